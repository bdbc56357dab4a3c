package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heshima/studio-api/internal/core/domain"
)

const collectionInquiries = "inquiries"

// InquiryRepository persists the inquiry aggregate as a single document with
// embedded line items. Creation and deletion of header plus items are
// therefore atomic, and an item can never outlive its parent.
type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

type lineItemDoc struct {
	ID          primitive.ObjectID `bson:"item_id"`
	ProductID   primitive.ObjectID `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	FinalPrice  string             `bson:"final_price"`
}

type inquiryDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	CustomerEmail string             `bson:"customer_email"`
	Notes         string             `bson:"notes,omitempty"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	Items         []lineItemDoc      `bson:"items"`
}

func (d *inquiryDoc) toDomain() *domain.Inquiry {
	items := make([]domain.LineItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.LineItem{
			ID:          item.ID.Hex(),
			ProductID:   item.ProductID.Hex(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			FinalPrice:  parsePrice(item.FinalPrice),
		})
	}

	return &domain.Inquiry{
		ID:            d.ID.Hex(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Notes:         d.Notes,
		Status:        domain.InquiryStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		Items:         items,
	}
}

// Create inserts the aggregate in one write and fills in the generated ids.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := inquiryDoc{
		CustomerName:  inquiry.CustomerName,
		CustomerEmail: inquiry.CustomerEmail,
		Notes:         inquiry.Notes,
		Status:        string(inquiry.Status),
		CreatedAt:     inquiry.CreatedAt.UTC(),
		Items:         make([]lineItemDoc, 0, len(inquiry.Items)),
	}

	for _, item := range inquiry.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return domain.ErrProductNotFound
		}
		doc.Items = append(doc.Items, lineItemDoc{
			ID:          primitive.NewObjectID(),
			ProductID:   productID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			FinalPrice:  item.FinalPrice.String(),
		})
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inquiry.ID = oid.Hex()
	}
	for i := range doc.Items {
		inquiry.Items[i].ID = doc.Items[i].ID.Hex()
	}
	return nil
}

// FindAll returns every inquiry, most recently created first.
func (r *InquiryRepository) FindAll(ctx context.Context) ([]*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var inquiries []*domain.Inquiry
	for cur.Next(ctx) {
		var doc inquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, doc.toDomain())
	}
	return inquiries, cur.Err()
}

// FindByID retrieves one aggregate by hex id.
func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc inquiryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// DeleteByID removes the aggregate document; embedded items go with it.
func (r *InquiryRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInquiryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the inquiries collection.
func (r *InquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
