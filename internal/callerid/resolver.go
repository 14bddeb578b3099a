package callerid

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

// Source names where a caller identity came from, in lookup priority order.
type Source string

const (
	SourceContacts     Source = "contacts"
	SourceSpamDatabase Source = "spam_database"
	SourceCommunity    Source = "community"
	SourceAIInference  Source = "ai_inference"
)

// SpamScoreThreshold is the registry score at which a number is surfaced as
// spam. Exactly 50 classifies as spam; 49 falls through.
const SpamScoreThreshold = 50

// SpamLabel is the display name for registry hits; the registry stores
// scores, not names.
const SpamLabel = "Suspected Spam"

type Result struct {
	Found        bool   `json:"found"`
	Source       Source `json:"source"`
	Name         string `json:"name"`
	IsSpam       bool   `json:"is_spam"`
	IsVerified   *bool  `json:"is_verified,omitempty"`
	SpamScore    *int   `json:"spam_score,omitempty"`
	SpamCategory string `json:"spam_category,omitempty"`
	PhoneNumber  string `json:"phone_number"`
}

// Resolver walks the identity chain for a number: saved contacts, then the
// spam registry, then community names from call logs, then pattern
// classification of the number itself. The first positive match wins. A
// store failure at any step aborts the whole lookup rather than continuing
// the chain on partial information.
type Resolver struct {
	db       *gorm.DB
	log      *logger.Logger
	contacts repos.ContactRepo
	spam     repos.SpamRepo
	callLogs repos.CallLogRepo
}

func NewResolver(db *gorm.DB, baseLog *logger.Logger, contacts repos.ContactRepo, spam repos.SpamRepo, callLogs repos.CallLogRepo) *Resolver {
	return &Resolver{
		db:       db,
		log:      baseLog.With("service", "CallerIDResolver"),
		contacts: contacts,
		spam:     spam,
		callLogs: callLogs,
	}
}

func (r *Resolver) Resolve(ctx context.Context, phoneNumber string) (*Result, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, fmt.Errorf("phone number is required")
	}

	r.log.Info("Looking up caller", "phone_number", phoneNumber)

	// Step 1: saved contacts.
	contact, err := r.contacts.GetByPhone(ctx, nil, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("contact lookup: %w", err)
	}
	if contact != nil {
		verified := contact.IsVerified
		return &Result{
			Found:       true,
			Source:      SourceContacts,
			Name:        contact.Name,
			IsSpam:      contact.IsSpam,
			IsVerified:  &verified,
			PhoneNumber: phoneNumber,
		}, nil
	}

	// Step 2: spam registry.
	spam, err := r.spam.GetByPhone(ctx, nil, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("spam lookup: %w", err)
	}
	if spam != nil && spam.SpamScore >= SpamScoreThreshold {
		score := spam.SpamScore
		return &Result{
			Found:        true,
			Source:       SourceSpamDatabase,
			Name:         SpamLabel,
			IsSpam:       true,
			SpamScore:    &score,
			SpamCategory: spam.Category,
			PhoneNumber:  phoneNumber,
		}, nil
	}

	// Step 3: community names from call logs.
	community, err := r.callLogs.LatestNamedByPhone(ctx, nil, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("community lookup: %w", err)
	}
	if community != nil && community.CallerName != nil && *community.CallerName != "" {
		verified := false
		return &Result{
			Found:       true,
			Source:      SourceCommunity,
			Name:        *community.CallerName,
			IsSpam:      false,
			IsVerified:  &verified,
			PhoneNumber: phoneNumber,
		}, nil
	}

	// Step 4: pattern classification of the number itself.
	verified := false
	return &Result{
		Found:       false,
		Source:      SourceAIInference,
		Name:        ClassifyNumber(phoneNumber),
		IsSpam:      false,
		IsVerified:  &verified,
		PhoneNumber: phoneNumber,
	}, nil
}

// ClassifyNumber infers a caller type from the digits alone.
func ClassifyNumber(phoneNumber string) string {
	clean := digitsOnly(phoneNumber)

	switch {
	case strings.HasPrefix(clean, "1800"), strings.HasPrefix(clean, "1860"):
		return "Toll-Free / Business"
	case len(clean) == 10 && strings.ContainsRune("6789", rune(clean[0])):
		return "Mobile Number"
	case len(clean) == 11 && strings.HasPrefix(clean, "0"):
		return "Landline"
	default:
		return "Unknown"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
