package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assistant modes for the Mode column.
const (
	InteractionModeAssistant = "assistant"
	InteractionModeAgent     = "agent"
)

// AIInteraction is the immutable record of one assistant exchange: the raw
// user input, the plan the model requested, and the results of executing it.
// Rows are created once and never updated. When both are present,
// ToolsExecuted aligns positionally with AIPlan.
type AIInteraction struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserInput      string         `gorm:"column:user_input;not null" json:"user_input"`
	DetectedIntent string         `gorm:"column:detected_intent" json:"detected_intent,omitempty"`
	Confidence     float64        `gorm:"column:confidence" json:"confidence,omitempty"`
	AIPlan         datatypes.JSON `gorm:"column:ai_plan;type:jsonb" json:"ai_plan,omitempty"`
	ToolsExecuted  datatypes.JSON `gorm:"column:tools_executed;type:jsonb" json:"tools_executed,omitempty"`
	FinalResponse  string         `gorm:"column:final_response" json:"final_response,omitempty"`
	Language       string         `gorm:"column:language;default:'en'" json:"language,omitempty"`
	Mode           string         `gorm:"column:mode;default:'assistant'" json:"mode,omitempty"`
	CreatedAt      time.Time      `gorm:"not null;default:now();index" json:"created_at"`
}

func (AIInteraction) TableName() string { return "ai_interactions" }

func (ai *AIInteraction) BeforeCreate(tx *gorm.DB) error {
	if ai.ID == uuid.Nil {
		ai.ID = uuid.New()
	}
	return nil
}
