package repository

import (
	"context"
	"errors"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type VendorRepo interface {
	Create(ctx context.Context, vendor *types.Vendor) (string, error)
	Get(ctx context.Context, id string) (*types.Vendor, error)
	List(ctx context.Context) ([]*types.Vendor, error)
	Update(ctx context.Context, id string, vendor *types.Vendor) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type vendorRepo struct {
	collection *mongo.Collection
}

func NewVendorRepo(collection *mongo.Collection) VendorRepo {
	return &vendorRepo{
		collection: collection,
	}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *types.Vendor) (string, error) {
	res, err := r.collection.InsertOne(ctx, vendor)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	vendor.ID = oid.Hex()
	return vendor.ID, nil
}

func (r *vendorRepo) Get(ctx context.Context, id string) (*types.Vendor, error) {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.ErrVendorNotFound
	}
	vendor := &types.Vendor{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objId}).Decode(vendor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]*types.Vendor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vendors []*types.Vendor
	for cursor.Next(ctx) {
		var vendor types.Vendor
		if err := cursor.Decode(&vendor); err != nil {
			return nil, err
		}
		vendors = append(vendors, &vendor)
	}
	return vendors, nil
}

func (r *vendorRepo) Update(ctx context.Context, id string, vendor *types.Vendor) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrVendorNotFound
	}
	update := bson.M{"$set": bson.M{
		"name":         vendor.Name,
		"contact_name": vendor.ContactName,
		"email":        vendor.Email,
		"phone":        vendor.Phone,
		"address":      vendor.Address,
		"updated_at":   vendor.UpdateAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objId}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return types.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) Delete(ctx context.Context, id string) error {
	objId, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.ErrVendorNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return types.ErrVendorNotFound
	}
	return nil
}

func (r *vendorRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
