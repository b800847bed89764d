package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rmotos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestMoto creates a moto at the first lifecycle stage with zero
// real costs.
func CreateTestMoto(t *testing.T, db *gorm.DB, userID string) *models.Moto {
	t.Helper()

	n := nextID()
	moto := &models.Moto{
		UserID:                userID,
		Brand:                 "Yamaha",
		Model:                 fmt.Sprintf("NMAX %d", n),
		Year:                  2020,
		Status:                models.StatusEnLaMira,
		PurchaseCostEstimated: 5000000,
		PurchaseDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(moto).Error; err != nil {
		t.Fatalf("failed to create test moto: %v", err)
	}
	return moto
}

// CreateTestMotoWithStatus creates a moto at the given lifecycle stage.
func CreateTestMotoWithStatus(t *testing.T, db *gorm.DB, userID string, status models.MotoStatus) *models.Moto {
	t.Helper()

	moto := CreateTestMoto(t, db, userID)
	if err := db.Model(moto).Update("status", status).Error; err != nil {
		t.Fatalf("failed to set test moto status: %v", err)
	}
	moto.Status = status
	return moto
}

// CreateTestSparePart creates a spare part linked to the given moto.
func CreateTestSparePart(t *testing.T, db *gorm.DB, motoID string, estimated, real float64) *models.SparePart {
	t.Helper()

	part := &models.SparePart{
		MotoID:        motoID,
		Name:          fmt.Sprintf("Repuesto %d", nextID()),
		CostEstimated: estimated,
		CostReal:      real,
	}
	if err := db.Create(part).Error; err != nil {
		t.Fatalf("failed to create test spare part: %v", err)
	}
	return part
}
