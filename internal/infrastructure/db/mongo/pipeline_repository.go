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

const pipelinesCollection = "pipelines"

// PipelineRepository persists pipeline records.
type PipelineRepository struct {
	coll *mongo.Collection
}

func NewPipelineRepository(db *mongo.Database) *PipelineRepository {
	return &PipelineRepository{coll: db.Collection(pipelinesCollection)}
}

type pipelineDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Stages      []string           `bson:"stages"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d pipelineDoc) toDomain() *domain.Pipeline {
	stages := d.Stages
	if stages == nil {
		stages = []string{}
	}
	return &domain.Pipeline{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Stages:      stages,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromPipeline(p *domain.Pipeline) pipelineDoc {
	return pipelineDoc{
		Name:        p.Name,
		Description: p.Description,
		Stages:      p.Stages,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PipelineRepository) Create(ctx context.Context, p *domain.Pipeline) (*domain.Pipeline, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromPipeline(p))
	if err != nil {
		return nil, fmt.Errorf("insert pipeline: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert pipeline: unexpected id type %T", res.InsertedID)
	}

	created := *p
	created.ID = oid.Hex()
	return &created, nil
}

func (r *PipelineRepository) FindByID(ctx context.Context, id string) (*domain.Pipeline, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPipelineNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc pipelineDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPipelineNotFound
		}
		return nil, fmt.Errorf("find pipeline: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PipelineRepository) List(ctx context.Context) ([]domain.Pipeline, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list pipelines: %w", err)
	}
	defer cur.Close(ctx)

	pipelines := []domain.Pipeline{}
	for cur.Next(ctx) {
		var doc pipelineDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode pipeline: %w", err)
		}
		pipelines = append(pipelines, *doc.toDomain())
	}
	return pipelines, cur.Err()
}

func (r *PipelineRepository) Update(ctx context.Context, p *domain.Pipeline) (*domain.Pipeline, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPipelineNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromPipeline(p))
	if err != nil {
		return nil, fmt.Errorf("update pipeline: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPipelineNotFound
	}
	return p, nil
}

func (r *PipelineRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPipelineNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete pipeline: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPipelineNotFound
	}
	return nil
}
