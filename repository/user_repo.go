package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *types.User) (string, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByFullName(ctx context.Context, fullName string) (*types.User, error)
	GetUserByDepartment(ctx context.Context, department string) ([]*types.User, error)
	UpdateUser(ctx context.Context, id string, user *types.User) error
	UpdateTasks(ctx context.Context, id string, version int64, tasks []types.Task) error
	PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CountTasksByStatus(ctx context.Context) (map[string]int64, error)
	DeleteUser(ctx context.Context, id string) error
}

type userRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	collection := db.Collection("users")

	// Index creation is idempotent; the unique email index backstops the
	// duplicate check done at registration time.
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "full_name", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "department", Value: 1}},
		},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating user indexes: %v", err)
	}

	return &userRepo{
		collection: collection,
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *types.User) (string, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", types.ErrEmailTaken
		}
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	user.ID = oid.Hex()
	return user.ID, nil
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrUserNotFound
	}
	user := &types.User{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	user := &types.User{}
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByFullName matches the display name exactly. If several users share
// the name, whichever the store returns first wins; notification dispatch
// lives with that ambiguity.
func (r *userRepo) GetUserByFullName(ctx context.Context, fullName string) (*types.User, error) {
	user := &types.User{}
	if err := r.collection.FindOne(ctx, bson.M{"full_name": fullName}).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByDepartment(ctx context.Context, department string) ([]*types.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"department": department})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*types.User
	for cursor.Next(ctx) {
		var user types.User
		if err := cursor.Decode(&user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, id string, user *types.User) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrUserNotFound
	}
	update := bson.M{"$set": bson.M{
		"full_name":  user.FullName,
		"department": user.Department,
		"job_title":  user.JobTitle,
		"start_date": user.StartDate,
		"avatar":     user.Avatar,
		"phone":      user.Phone,
		"address":    user.Address,
		"updated_at": time.Now().Unix(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrUserNotFound
	}
	return nil
}

// UpdateTasks replaces the embedded task array. The write is conditional on
// the task_version the caller read; a stale version means another writer got
// there first and the caller must re-read and retry.
func (r *userRepo) UpdateTasks(ctx context.Context, id string, version int64, tasks []types.Task) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrUserNotFound
	}
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objId, "task_version": version},
		bson.M{
			"$set": bson.M{"tasks": tasks, "updated_at": time.Now().Unix()},
			"$inc": bson.M{"task_version": 1},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objId})
		if err != nil {
			return err
		}
		if count == 0 {
			return types.ErrUserNotFound
		}
		return types.ErrVersionConflict
	}
	return nil
}

func (r *userRepo) PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*types.User
	for cursor.Next(ctx) {
		var user types.User
		if err := cursor.Decode(&user); err != nil {
			return nil, 0, err
		}
		users = append(users, &user)
	}
	return users, total, nil
}

func (r *userRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}

func (r *userRepo) CountTasksByStatus(ctx context.Context) (map[string]int64, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$tasks"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tasks.status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *userRepo) DeleteUser(ctx context.Context, id string) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrUserNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrUserNotFound
	}
	return nil
}
