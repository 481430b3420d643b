package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

const studentCollection = "students"

type MongoStudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(studentCollection)}
}

type mongoStudent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FirstName        string             `bson:"first_name"`
	LastName         string             `bson:"last_name"`
	DateOfBirth      time.Time          `bson:"date_of_birth"`
	Gender           string             `bson:"gender,omitempty"`
	Address          string             `bson:"address,omitempty"`
	ParentName       string             `bson:"parent_name,omitempty"`
	ParentPhone      string             `bson:"parent_phone,omitempty"`
	ParentEmail      string             `bson:"parent_email,omitempty"`
	EmergencyContact string             `bson:"emergency_contact,omitempty"`
	EmergencyPhone   string             `bson:"emergency_phone,omitempty"`
	MedicalInfo      string             `bson:"medical_info,omitempty"`
	Allergies        string             `bson:"allergies,omitempty"`
	EnrollmentDate   time.Time          `bson:"enrollment_date"`
	Active           bool               `bson:"is_active"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (r *MongoStudentRepository) Insert(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	doc := toMongoStudent(s)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	out := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *MongoStudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoStudentRepository) Update(ctx context.Context, s *domain.Student) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	doc := toMongoStudent(s)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStudentNotFound
	}
	return s, nil
}

func (r *MongoStudentRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}

	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()}}

	var ms mongoStudent
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&ms)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("set student active: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *MongoStudentRepository) FindActive(ctx context.Context) ([]*domain.Student, error) {
	return r.findMany(ctx, bson.M{"is_active": true})
}

func (r *MongoStudentRepository) FindAll(ctx context.Context) ([]*domain.Student, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoStudentRepository) SearchByName(ctx context.Context, name string) ([]*domain.Student, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	return r.findMany(ctx, bson.M{"$or": bson.A{
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
	}})
}

func (r *MongoStudentRepository) FindByParentEmail(ctx context.Context, email string) ([]*domain.Student, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}
	return r.findMany(ctx, bson.M{"parent_email": pattern})
}

func (r *MongoStudentRepository) CountActive(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

func (r *MongoStudentRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Student, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []*domain.Student
	for cursor.Next(ctx) {
		var ms mongoStudent
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, ms.toDomain())
	}
	return students, cursor.Err()
}

func toMongoStudent(s *domain.Student) mongoStudent {
	return mongoStudent{
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		DateOfBirth:      s.DateOfBirth,
		Gender:           s.Gender,
		Address:          s.Address,
		ParentName:       s.ParentName,
		ParentPhone:      s.ParentPhone,
		ParentEmail:      s.ParentEmail,
		EmergencyContact: s.EmergencyContact,
		EmergencyPhone:   s.EmergencyPhone,
		MedicalInfo:      s.MedicalInfo,
		Allergies:        s.Allergies,
		EnrollmentDate:   s.EnrollmentDate,
		Active:           s.Active,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (ms *mongoStudent) toDomain() *domain.Student {
	return &domain.Student{
		ID:               ms.ID.Hex(),
		FirstName:        ms.FirstName,
		LastName:         ms.LastName,
		DateOfBirth:      ms.DateOfBirth,
		Gender:           ms.Gender,
		Address:          ms.Address,
		ParentName:       ms.ParentName,
		ParentPhone:      ms.ParentPhone,
		ParentEmail:      ms.ParentEmail,
		EmergencyContact: ms.EmergencyContact,
		EmergencyPhone:   ms.EmergencyPhone,
		MedicalInfo:      ms.MedicalInfo,
		Allergies:        ms.Allergies,
		EnrollmentDate:   ms.EnrollmentDate,
		Active:           ms.Active,
		CreatedAt:        ms.CreatedAt,
		UpdatedAt:        ms.UpdatedAt,
	}
}
