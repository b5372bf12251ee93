package models_test

import (
	"errors"
	"testing"

	"meansassess/internal/models"
	"meansassess/internal/testutil"
	"meansassess/internal/uuid"
)

func TestBase_BeforeCreate(t *testing.T) {
	t.Run("assigns an id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		a := testutil.CreateTestAssessment(t, db, testutil.Date(t, "2019-06-06"))
		if !uuid.IsValid(a.ID) {
			t.Errorf("expected a uuid, got %q", a.ID)
		}
	})

	t.Run("canonicalises a preset id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		a := &models.Assessment{
			Base:                 models.Base{ID: "0190A9C4-7D1E-7000-8000-00000000000A"},
			SubmissionDate:       testutil.Date(t, "2019-06-06"),
			MatterProceedingType: models.MatterProceedingTypeDomesticAbuse,
			AssessmentResult:     models.AssessmentResultPending,
		}
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID != "0190a9c4-7d1e-7000-8000-00000000000a" {
			t.Errorf("expected lower-case id, got %q", a.ID)
		}
	})

	t.Run("rejects a preset id that is not a uuid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		err := db.Create(&models.Employment{Base: models.Base{ID: "job-1"}, Name: "Job 1"}).Error
		if !errors.Is(err, models.ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}

		var count int64
		db.Model(&models.Employment{}).Count(&count)
		if count != 0 {
			t.Errorf("expected nothing written, got %d", count)
		}
	})
}

func TestParseMatterProceedingType(t *testing.T) {
	for _, in := range []string{"domestic_abuse", "domestic abuse"} {
		got, ok := models.ParseMatterProceedingType(in)
		if !ok || got != models.MatterProceedingTypeDomesticAbuse {
			t.Errorf("%q: expected domestic_abuse, got %q (%v)", in, got, ok)
		}
	}
	if _, ok := models.ParseMatterProceedingType("Domestic Abuse"); ok {
		t.Error("expected other spellings to be rejected")
	}
}
