package app

import (
	"github.com/yungbote/truecall-backend/internal/clients/aigateway"
	"github.com/yungbote/truecall-backend/internal/platform/logger"
)

type Clients struct {
	AIGateway aigateway.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	gateway, err := aigateway.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	return Clients{AIGateway: gateway}, nil
}
