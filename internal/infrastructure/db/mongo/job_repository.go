package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobdeck/jobdeck-api/internal/core/domain"
)

const jobsCollection = "jobs"

// JobRepository persists job records.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Company     string             `bson:"company"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	URL         string             `bson:"url,omitempty"`
	Salary      string             `bson:"salary,omitempty"`
	Status      string             `bson:"status"`
	PipelineID  string             `bson:"pipeline_id,omitempty"`
	CustomerID  string             `bson:"customer_id,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Company:     d.Company,
		Description: d.Description,
		Location:    d.Location,
		URL:         d.URL,
		Salary:      d.Salary,
		Status:      d.Status,
		PipelineID:  d.PipelineID,
		CustomerID:  d.CustomerID,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromJob(j *domain.Job) jobDoc {
	return jobDoc{
		Title:       j.Title,
		Company:     j.Company,
		Description: j.Description,
		Location:    j.Location,
		URL:         j.URL,
		Salary:      j.Salary,
		Status:      j.Status,
		PipelineID:  j.PipelineID,
		CustomerID:  j.CustomerID,
		Notes:       j.Notes,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromJob(job))
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert job: unexpected id type %T", res.InsertedID)
	}

	created := *job
	created.ID = oid.Hex()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := []domain.Job{}
	for cur.Next(ctx) {
		var doc jobDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, *doc.toDomain())
	}
	return jobs, cur.Err()
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromJob(job))
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
