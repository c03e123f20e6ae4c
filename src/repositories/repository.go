package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
)

// Repositories return (nil, nil) when an entity is absent so that callers
// can distinguish "not found" from store failures. Every lookup is scoped
// by tenant.

type SurveyRepository interface {
	GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Survey, error)
	GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Survey, error)
	Add(ctx context.Context, survey *models.Survey) error
	Update(ctx context.Context, survey *models.Survey) error
	Delete(ctx context.Context, tenantID, id primitive.ObjectID) error
}

type ScaleRepository interface {
	GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Scale, error)
	GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Scale, error)
	Add(ctx context.Context, scale *models.Scale) error
	Update(ctx context.Context, scale *models.Scale) error
	Delete(ctx context.Context, tenantID, id primitive.ObjectID) error
	// IsInUse reports whether any question of the tenant references the scale.
	IsInUse(ctx context.Context, tenantID, scaleID primitive.ObjectID) (bool, error)
}

type PublicationRepository interface {
	GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Publication, error)
	GetByAccessCode(ctx context.Context, code string) (*models.Publication, error)
	GetBySurvey(ctx context.Context, tenantID, surveyID primitive.ObjectID) ([]models.Publication, error)
	Add(ctx context.Context, publication *models.Publication) error
	// Close sets closedAt only if it is not set yet. It returns false when
	// the publication was already closed (or absent), so a concurrent
	// double-close cannot overwrite the first timestamp.
	Close(ctx context.Context, tenantID, id primitive.ObjectID, at time.Time) (bool, error)
}

type ResponseRepository interface {
	// Upsert writes the response for its (respondent, question, publication)
	// triple, overwriting any previous value. The write is atomic per triple.
	Upsert(ctx context.Context, response *models.Response) error
	GetByQuestionAndPublication(ctx context.Context, tenantID, questionID, publicationID primitive.ObjectID) ([]models.Response, error)
	GetByRespondentAndPublication(ctx context.Context, tenantID, respondentID, publicationID primitive.ObjectID) ([]models.Response, error)
	GetByPublication(ctx context.Context, tenantID, publicationID primitive.ObjectID) ([]models.Response, error)
	CountDistinctRespondents(ctx context.Context, tenantID, publicationID primitive.ObjectID) (int, error)
}

type RespondentRepository interface {
	GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Respondent, error)
	CountEligible(ctx context.Context, tenantID primitive.ObjectID) (int, error)
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// UnitOfWork runs fn inside one transactional boundary: either every write
// issued through the callback context commits, or none do.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the repositories behind one injection point, so services
// receive explicit dependencies instead of reaching for globals.
type Store struct {
	Surveys      SurveyRepository
	Scales       ScaleRepository
	Publications PublicationRepository
	Responses    ResponseRepository
	Respondents  RespondentRepository
	Admins       AdminRepository
	UnitOfWork   UnitOfWork
}
