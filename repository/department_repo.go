package repository

import (
	"context"
	"errors"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type DepartmentRepo interface {
	Create(ctx context.Context, department *types.Department) (string, error)
	Get(ctx context.Context, id string) (*types.Department, error)
	List(ctx context.Context) ([]*types.Department, error)
	Update(ctx context.Context, id string, department *types.Department) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type departmentRepo struct {
	collection *mongo.Collection
}

func NewDepartmentRepo(collection *mongo.Collection) DepartmentRepo {
	return &departmentRepo{
		collection: collection,
	}
}

func (r *departmentRepo) Create(ctx context.Context, department *types.Department) (string, error) {
	res, err := r.collection.InsertOne(ctx, department)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	department.ID = oid.Hex()
	return department.ID, nil
}

func (r *departmentRepo) Get(ctx context.Context, id string) (*types.Department, error) {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrDepartmentNotFound
	}
	department := &types.Department{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(department); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrDepartmentNotFound
		}
		return nil, err
	}
	return department, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]*types.Department, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var departments []*types.Department
	for cursor.Next(ctx) {
		var department types.Department
		if err := cursor.Decode(&department); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}
	return departments, nil
}

func (r *departmentRepo) Update(ctx context.Context, id string, department *types.Department) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrDepartmentNotFound
	}
	update := bson.M{"$set": bson.M{
		"name":        department.Name,
		"description": department.Description,
		"lead":        department.Lead,
		"updated_at":  department.UpdateAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepo) Delete(ctx context.Context, id string) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrDepartmentNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
