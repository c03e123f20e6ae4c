package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-SurveyHub/src/models"
)

// NewMongoStore wires the MongoDB-backed repositories around one database.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Surveys:      &mongoSurveyRepository{coll: db.Collection("surveys")},
		Scales:       &mongoScaleRepository{scales: db.Collection("scales"), surveys: db.Collection("surveys")},
		Publications: &mongoPublicationRepository{coll: db.Collection("publications")},
		Responses:    &mongoResponseRepository{coll: db.Collection("responses")},
		Respondents:  &mongoRespondentRepository{coll: db.Collection("respondents")},
		Admins:       &mongoAdminRepository{coll: db.Collection("admins")},
		UnitOfWork:   &mongoUnitOfWork{client: client},
	}
}

// --------- Surveys ---------

type mongoSurveyRepository struct {
	coll *mongo.Collection
}

func (r *mongoSurveyRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

func (r *mongoSurveyRepository) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Survey, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []models.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *mongoSurveyRepository) Add(ctx context.Context, survey *models.Survey) error {
	if survey.ID.IsZero() {
		survey.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, survey)
	return err
}

func (r *mongoSurveyRepository) Update(ctx context.Context, survey *models.Survey) error {
	filter := bson.M{"_id": survey.ID, "tenantId": survey.TenantID}
	_, err := r.coll.ReplaceOne(ctx, filter, survey)
	return err
}

func (r *mongoSurveyRepository) Delete(ctx context.Context, tenantID, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenantID})
	return err
}

// --------- Scales ---------

type mongoScaleRepository struct {
	scales  *mongo.Collection
	surveys *mongo.Collection
}

func (r *mongoScaleRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Scale, error) {
	var scale models.Scale
	err := r.scales.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(&scale)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &scale, nil
}

func (r *mongoScaleRepository) GetAll(ctx context.Context, tenantID primitive.ObjectID) ([]models.Scale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.scales.Find(ctx, bson.M{"tenantId": tenantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scales []models.Scale
	if err := cursor.All(ctx, &scales); err != nil {
		return nil, err
	}
	return scales, nil
}

func (r *mongoScaleRepository) Add(ctx context.Context, scale *models.Scale) error {
	if scale.ID.IsZero() {
		scale.ID = primitive.NewObjectID()
	}
	_, err := r.scales.InsertOne(ctx, scale)
	return err
}

func (r *mongoScaleRepository) Update(ctx context.Context, scale *models.Scale) error {
	filter := bson.M{"_id": scale.ID, "tenantId": scale.TenantID}
	_, err := r.scales.ReplaceOne(ctx, filter, scale)
	return err
}

func (r *mongoScaleRepository) Delete(ctx context.Context, tenantID, id primitive.ObjectID) error {
	_, err := r.scales.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenantID})
	return err
}

func (r *mongoScaleRepository) IsInUse(ctx context.Context, tenantID, scaleID primitive.ObjectID) (bool, error) {
	count, err := r.surveys.CountDocuments(ctx, bson.M{
		"tenantId":          tenantID,
		"questions.scaleId": scaleID,
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------- Publications ---------

type mongoPublicationRepository struct {
	coll *mongo.Collection
}

func (r *mongoPublicationRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Publication, error) {
	var publication models.Publication
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(&publication)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &publication, nil
}

func (r *mongoPublicationRepository) GetByAccessCode(ctx context.Context, code string) (*models.Publication, error) {
	var publication models.Publication
	err := r.coll.FindOne(ctx, bson.M{"accessCode": code}).Decode(&publication)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &publication, nil
}

func (r *mongoPublicationRepository) GetBySurvey(ctx context.Context, tenantID, surveyID primitive.ObjectID) ([]models.Publication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID, "surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var publications []models.Publication
	if err := cursor.All(ctx, &publications); err != nil {
		return nil, err
	}
	return publications, nil
}

func (r *mongoPublicationRepository) Add(ctx context.Context, publication *models.Publication) error {
	if publication.ID.IsZero() {
		publication.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, publication)
	return err
}

func (r *mongoPublicationRepository) Close(ctx context.Context, tenantID, id primitive.ObjectID, at time.Time) (bool, error) {
	// The closedAt guard in the filter makes a concurrent double-close lose
	// the race instead of overwriting the first timestamp.
	filter := bson.M{
		"_id":      id,
		"tenantId": tenantID,
		"closedAt": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{"closedAt": at, "updatedAt": at}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// --------- Responses ---------

type mongoResponseRepository struct {
	coll *mongo.Collection
}

func (r *mongoResponseRepository) Upsert(ctx context.Context, response *models.Response) error {
	filter := bson.M{
		"tenantId":      response.TenantID,
		"publicationId": response.PublicationID,
		"respondentId":  response.RespondentID,
		"questionId":    response.QuestionID,
	}
	update := bson.M{
		"$set": bson.M{
			"choiceId":     response.ChoiceID,
			"responseText": response.ResponseText,
			"respondedAt":  response.RespondedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"createdAt": response.RespondedAt,
		},
	}

	// Two concurrent first-time submissions for the same triple can both
	// take the insert path; the unique index rejects one with a duplicate
	// key, and retrying turns it into an update.
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		_, err = r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err == nil || !mongo.IsDuplicateKeyError(err) {
			return err
		}
	}
	return err
}

func (r *mongoResponseRepository) GetByQuestionAndPublication(ctx context.Context, tenantID, questionID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.find(ctx, bson.M{
		"tenantId":      tenantID,
		"questionId":    questionID,
		"publicationId": publicationID,
	})
}

func (r *mongoResponseRepository) GetByRespondentAndPublication(ctx context.Context, tenantID, respondentID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.find(ctx, bson.M{
		"tenantId":      tenantID,
		"respondentId":  respondentID,
		"publicationId": publicationID,
	})
}

func (r *mongoResponseRepository) GetByPublication(ctx context.Context, tenantID, publicationID primitive.ObjectID) ([]models.Response, error) {
	return r.find(ctx, bson.M{
		"tenantId":      tenantID,
		"publicationId": publicationID,
	})
}

func (r *mongoResponseRepository) find(ctx context.Context, filter bson.M) ([]models.Response, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []models.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *mongoResponseRepository) CountDistinctRespondents(ctx context.Context, tenantID, publicationID primitive.ObjectID) (int, error) {
	ids, err := r.coll.Distinct(ctx, "respondentId", bson.M{
		"tenantId":      tenantID,
		"publicationId": publicationID,
	})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// --------- Respondents ---------

type mongoRespondentRepository struct {
	coll *mongo.Collection
}

func (r *mongoRespondentRepository) GetByID(ctx context.Context, tenantID, id primitive.ObjectID) (*models.Respondent, error) {
	var respondent models.Respondent
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "tenantId": tenantID}).Decode(&respondent)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &respondent, nil
}

func (r *mongoRespondentRepository) CountEligible(ctx context.Context, tenantID primitive.ObjectID) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"tenantId": tenantID, "active": true})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// --------- Admins ---------

type mongoAdminRepository struct {
	coll *mongo.Collection
}

func (r *mongoAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// --------- Unit of work ---------

type mongoUnitOfWork struct {
	client *mongo.Client
}

func (u *mongoUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := u.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
