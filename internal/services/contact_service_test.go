// internal/services/contact_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/models"
)

type ContactServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ContactService
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewContactService(suite.db)
}

func (suite *ContactServiceTestSuite) submit(email string) *models.Contact {
	contact, err := suite.service.Submit(&SubmitContactRequest{
		Name:    "John Doe",
		Email:   email,
		Subject: "Countertop quote",
		Message: "Looking for a marble pattern countertop.",
	})
	suite.Require().NoError(err)
	return contact
}

func (suite *ContactServiceTestSuite) TestSubmitStartsAsNew() {
	contact := suite.submit("John@Example.com")

	suite.Equal(models.ContactStatusNew, contact.Status)
	suite.Equal(models.ContactPriorityMedium, contact.Priority)
	suite.Equal("john@example.com", contact.Email)
	suite.NotEqual(uuid.Nil, contact.ID)

	var count int64
	suite.db.Model(&models.Contact{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *ContactServiceTestSuite) TestSubmitRejectsInvalidEmail() {
	_, err := suite.service.Submit(&SubmitContactRequest{
		Name:    "John Doe",
		Email:   "not-an-email",
		Subject: "Hello",
		Message: "Hi",
	})
	suite.Error(err)

	var count int64
	suite.db.Model(&models.Contact{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *ContactServiceTestSuite) TestFirstViewMarksRead() {
	contact := suite.submit("jane@example.com")

	viewed, err := suite.service.Get(contact.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ContactStatusRead, viewed.Status)

	// Repeat views leave the status alone.
	again, err := suite.service.Get(contact.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ContactStatusRead, again.Status)
}

func (suite *ContactServiceTestSuite) TestViewDoesNotRegressLaterStatus() {
	contact := suite.submit("jane@example.com")

	_, err := suite.service.UpdateStatus(contact.ID, models.ContactStatusReplied)
	suite.Require().NoError(err)

	viewed, err := suite.service.Get(contact.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ContactStatusReplied, viewed.Status)
}

func (suite *ContactServiceTestSuite) TestStatusUpdates() {
	contact := suite.submit("jane@example.com")

	updated, err := suite.service.UpdateStatus(contact.ID, models.ContactStatusRead)
	suite.Require().NoError(err)
	suite.Equal(models.ContactStatusRead, updated.Status)
	firstUpdate := updated.UpdatedAt

	// Separate the writes so the second touch is visible in UpdatedAt.
	time.Sleep(5 * time.Millisecond)

	updated, err = suite.service.UpdateStatus(contact.ID, models.ContactStatusClosed)
	suite.Require().NoError(err)
	suite.Equal(models.ContactStatusClosed, updated.Status)
	suite.True(updated.UpdatedAt.After(firstUpdate))

	reloaded, err := suite.service.Get(contact.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.UpdatedAt.After(firstUpdate))
}

func (suite *ContactServiceTestSuite) TestUpdateStatusUnknownID() {
	_, err := suite.service.UpdateStatus(uuid.New(), models.ContactStatusRead)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *ContactServiceTestSuite) TestBulkUpdateStatus() {
	first := suite.submit("a@example.com")
	second := suite.submit("b@example.com")
	suite.submit("c@example.com")

	updated, err := suite.service.BulkUpdateStatus(
		[]uuid.UUID{first.ID, second.ID},
		models.ContactStatusClosed,
	)
	suite.Require().NoError(err)
	suite.Equal(int64(2), updated)

	var closed int64
	suite.db.Model(&models.Contact{}).Where("status = ?", models.ContactStatusClosed).Count(&closed)
	suite.Equal(int64(2), closed)
}

func (suite *ContactServiceTestSuite) TestSearchFacets() {
	first := suite.submit("a@example.com")
	suite.submit("b@example.com")

	_, err := suite.service.UpdateStatus(first.ID, models.ContactStatusClosed)
	suite.Require().NoError(err)

	status := models.ContactStatusClosed
	contacts, total, err := suite.service.Search(ContactSearchParams{
		Status: &status,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(contacts, 1)
	suite.Equal(first.ID, contacts[0].ID)
}

func (suite *ContactServiceTestSuite) TestSearchFreeText() {
	suite.submit("quarry@example.com")
	other, err := suite.service.Submit(&SubmitContactRequest{
		Name:    "Ayse Yilmaz",
		Email:   "ayse@example.com",
		Subject: "Bayilik",
		Message: "Bayilik kosullarinizi ogrenmek istiyorum.",
	})
	suite.Require().NoError(err)

	contacts, total, searchErr := suite.service.Search(ContactSearchParams{
		PaginationParams: paginationWithSearch("bayilik"),
	})
	suite.Require().NoError(searchErr)
	suite.Equal(int64(1), total)
	suite.Len(contacts, 1)
	suite.Equal(other.ID, contacts[0].ID)
}

func (suite *ContactServiceTestSuite) TestDelete() {
	contact := suite.submit("gone@example.com")

	suite.Require().NoError(suite.service.Delete(contact.ID))
	suite.ErrorIs(suite.service.Delete(contact.ID), ErrNotFound)
}

func TestContactServiceSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
