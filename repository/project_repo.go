package repository

import (
	"context"
	"errors"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ProjectRepo interface {
	Create(ctx context.Context, project *types.Project) (string, error)
	Get(ctx context.Context, id string) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Update(ctx context.Context, id string, project *types.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type projectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(collection *mongo.Collection) ProjectRepo {
	return &projectRepo{
		collection: collection,
	}
}

func (r *projectRepo) Create(ctx context.Context, project *types.Project) (string, error) {
	res, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	project.ID = oid.Hex()
	return project.ID, nil
}

func (r *projectRepo) Get(ctx context.Context, id string) (*types.Project, error) {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrProjectNotFound
	}
	project := &types.Project{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) List(ctx context.Context) ([]*types.Project, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []*types.Project
	for cursor.Next(ctx) {
		var project types.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, id string, project *types.Project) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrProjectNotFound
	}
	update := bson.M{"$set": bson.M{
		"name":        project.Name,
		"description": project.Description,
		"status":      project.Status,
		"updated_at":  project.UpdateAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrProjectNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
