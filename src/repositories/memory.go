package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-SurveyHub/src/models"
)

// NewMemoryStore builds an in-memory Store with the same semantics as the
// MongoDB one (tenant scoping, absent results as nil, one response per
// triple). It backs the service tests and local development without a
// database.
func NewMemoryStore() *Store {
	m := &memoryStore{
		surveys:      map[primitive.ObjectID]models.Survey{},
		scales:       map[primitive.ObjectID]models.Scale{},
		publications: map[primitive.ObjectID]models.Publication{},
		responses:    map[responseKey]models.Response{},
		respondents:  map[primitive.ObjectID]models.Respondent{},
		admins:       map[string]models.Admin{},
	}
	return &Store{
		Surveys:      &memorySurveyRepository{m},
		Scales:       &memoryScaleRepository{m},
		Publications: &memoryPublicationRepository{m},
		Responses:    &memoryResponseRepository{m},
		Respondents:  &memoryRespondentRepository{m},
		Admins:       &memoryAdminRepository{m},
		UnitOfWork:   &memoryUnitOfWork{},
	}
}

type responseKey struct {
	respondentID  primitive.ObjectID
	questionID    primitive.ObjectID
	publicationID primitive.ObjectID
}

type memoryStore struct {
	mu           sync.RWMutex
	surveys      map[primitive.ObjectID]models.Survey
	scales       map[primitive.ObjectID]models.Scale
	publications map[primitive.ObjectID]models.Publication
	responses    map[responseKey]models.Response
	respondents  map[primitive.ObjectID]models.Respondent
	admins       map[string]models.Admin
}

// --------- Surveys ---------

type memorySurveyRepository struct{ m *memoryStore }

func (r *memorySurveyRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Survey, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	survey, ok := r.m.surveys[id]
	if !ok || survey.TenantID != tenantID {
		return nil, nil
	}
	return &survey, nil
}

func (r *memorySurveyRepository) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Survey, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var surveys []models.Survey
	for _, s := range r.m.surveys {
		if s.TenantID == tenantID {
			surveys = append(surveys, s)
		}
	}
	return surveys, nil
}

func (r *memorySurveyRepository) Add(ctx context.Context, survey *models.Survey) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if survey.ID.IsZero() {
		survey.ID = primitive.NewObjectID()
	}
	r.m.surveys[survey.ID] = *survey
	return nil
}

func (r *memorySurveyRepository) Update(ctx context.Context, survey *models.Survey) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.surveys[survey.ID] = *survey
	return nil
}

func (r *memorySurveyRepository) Delete(ctx context.Context, tenantID, id primitive.ObjectID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.surveys[id]; ok && s.TenantID == tenantID {
		delete(r.m.surveys, id)
	}
	return nil
}

// --------- Scales ---------

type memoryScaleRepository struct{ m *memoryStore }

func (r *memoryScaleRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Scale, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	scale, ok := r.m.scales[id]
	if !ok || scale.TenantID != tenantID {
		return nil, nil
	}
	return &scale, nil
}

func (r *memoryScaleRepository) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Scale, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var scales []models.Scale
	for _, s := range r.m.scales {
		if s.TenantID == tenantID {
			scales = append(scales, s)
		}
	}
	return scales, nil
}

func (r *memoryScaleRepository) Add(ctx context.Context, scale *models.Scale) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if scale.ID.IsZero() {
		scale.ID = primitive.NewObjectID()
	}
	r.m.scales[scale.ID] = *scale
	return nil
}

func (r *memoryScaleRepository) Update(ctx context.Context, scale *models.Scale) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.scales[scale.ID] = *scale
	return nil
}

func (r *memoryScaleRepository) Delete(ctx context.Context, tenantID, id primitive.ObjectID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.scales[id]; ok && s.TenantID == tenantID {
		delete(r.m.scales, id)
	}
	return nil
}

func (r *memoryScaleRepository) IsInUse(ctx context.Context, tenantID, scaleID primitive.ObjectID) (bool, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, survey := range r.m.surveys {
		if survey.TenantID != tenantID {
			continue
		}
		for _, q := range survey.Questions {
			if q.ScaleID != nil && *q.ScaleID == scaleID {
				return true, nil
			}
		}
	}
	return false, nil
}

// --------- Publications ---------

type memoryPublicationRepository struct{ m *memoryStore }

func (r *memoryPublicationRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Publication, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	publication, ok := r.m.publications[id]
	if !ok || publication.TenantID != tenantID {
		return nil, nil
	}
	return &publication, nil
}

func (r *memoryPublicationRepository) GetByAccessCode(ctx context.Context, code string) (*models.Publication, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, p := range r.m.publications {
		if p.AccessCode == code {
			publication := p
			return &publication, nil
		}
	}
	return nil, nil
}

func (r *memoryPublicationRepository) GetBySurvey(ctx context.Context, tenantID, surveyID primitive.ObjectID) ([]models.Publication, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var publications []models.Publication
	for _, p := range r.m.publications {
		if p.TenantID == tenantID && p.SurveyID == surveyID {
			publications = append(publications, p)
		}
	}
	return publications, nil
}

func (r *memoryPublicationRepository) Add(ctx context.Context, publication *models.Publication) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if publication.ID.IsZero() {
		publication.ID = primitive.NewObjectID()
	}
	r.m.publications[publication.ID] = *publication
	return nil
}

func (r *memoryPublicationRepository) Close(ctx context.Context, tenantID, id primitive.ObjectID, at time.Time) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	publication, ok := r.m.publications[id]
	if !ok || publication.TenantID != tenantID || publication.ClosedAt != nil {
		return false, nil
	}
	closedAt := at
	publication.ClosedAt = &closedAt
	publication.UpdatedAt = at
	r.m.publications[id] = publication
	return true, nil
}

// --------- Responses ---------

type memoryResponseRepository struct{ m *memoryStore }

func (r *memoryResponseRepository) Upsert(ctx context.Context, response *models.Response) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	key := responseKey{
		respondentID:  response.RespondentID,
		questionID:    response.QuestionID,
		publicationID: response.PublicationID,
	}
	if existing, ok := r.m.responses[key]; ok {
		existing.ChoiceID = response.ChoiceID
		existing.ResponseText = response.ResponseText
		existing.RespondedAt = response.RespondedAt
		r.m.responses[key] = existing
		return nil
	}
	if response.ID.IsZero() {
		response.ID = primitive.NewObjectID()
	}
	response.CreatedAt = response.RespondedAt
	r.m.responses[key] = *response
	return nil
}

func (r *memoryResponseRepository) GetByQuestionAndPublication(ctx context.Context, tenantID, questionID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.filter(func(resp models.Response) bool {
		return resp.TenantID == tenantID && resp.QuestionID == questionID && resp.PublicationID == publicationID
	}), nil
}

func (r *memoryResponseRepository) GetByRespondentAndPublication(ctx context.Context, tenantID, respondentID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.filter(func(resp models.Response) bool {
		return resp.TenantID == tenantID && resp.RespondentID == respondentID && resp.PublicationID == publicationID
	}), nil
}

func (r *memoryResponseRepository) GetByPublication(ctx context.Context, tenantID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.filter(func(resp models.Response) bool {
		return resp.TenantID == tenantID && resp.PublicationID == publicationID
	}), nil
}

func (r *memoryResponseRepository) filter(keep func(models.Response) bool) []models.Response {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var responses []models.Response
	for _, resp := range r.m.responses {
		if keep(resp) {
			responses = append(responses, resp)
		}
	}
	return responses
}

func (r *memoryResponseRepository) CountDistinctRespondents(ctx context.Context, tenantID, publicationID primitive.ObjectID) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	seen := map[primitive.ObjectID]bool{}
	for _, resp := range r.m.responses {
		if resp.TenantID == tenantID && resp.PublicationID == publicationID {
			seen[resp.RespondentID] = true
		}
	}
	return len(seen), nil
}

// --------- Respondents ---------

type memoryRespondentRepository struct{ m *memoryStore }

func (r *memoryRespondentRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Respondent, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	respondent, ok := r.m.respondents[id]
	if !ok || respondent.TenantID != tenantID {
		return nil, nil
	}
	return &respondent, nil
}

func (r *memoryRespondentRepository) CountEligible(ctx context.Context, tenantID primitive.ObjectID) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	count := 0
	for _, respondent := range r.m.respondents {
		if respondent.TenantID == tenantID && respondent.Active {
			count++
		}
	}
	return count, nil
}

// AddRespondent seeds a respondent; the directory itself is an external
// collaborator, so there is no repository interface for writes.
func AddRespondent(store *Store, respondent *models.Respondent) {
	repo := store.Respondents.(*memoryRespondentRepository)
	repo.m.mu.Lock()
	defer repo.m.mu.Unlock()
	if respondent.ID.IsZero() {
		respondent.ID = primitive.NewObjectID()
	}
	repo.m.respondents[respondent.ID] = *respondent
}

// AddAdmin seeds an admin account into a memory store.
func AddAdmin(store *Store, admin *models.Admin) {
	repo := store.Admins.(*memoryAdminRepository)
	repo.m.mu.Lock()
	defer repo.m.mu.Unlock()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	repo.m.admins[admin.Email] = *admin
}

// --------- Admins ---------

type memoryAdminRepository struct{ m *memoryStore }

func (r *memoryAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	admin, ok := r.m.admins[email]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

// --------- Unit of work ---------

// memoryUnitOfWork runs the callback directly: every repository write is
// already atomic under the store mutex, which is enough for a
// single-process store.
type memoryUnitOfWork struct{}

func (u *memoryUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
