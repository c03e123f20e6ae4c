package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeClosePublication = "publication:close"

type ClosePublicationPayload struct {
	TenantID      string `json:"tenant_id"`
	PublicationID string `json:"publication_id"`
}

func NewClosePublicationTask(tenantID, publicationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ClosePublicationPayload{TenantID: tenantID, PublicationID: publicationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeClosePublication, payload), nil
}
