package service

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
	"github.com/unboundhq/unbound-backend/pkg/storage"
	"github.com/unboundhq/unbound-backend/pkg/utils"
)

const maxPosterSize = 5 * 1024 * 1024 // 5MB

type EventService struct {
	events   EventStore
	fests    FestStore
	colleges CollegeStore
	posters  storage.PosterStorage
	images   storage.ImageService
}

func NewEventService(
	events EventStore,
	fests FestStore,
	colleges CollegeStore,
	posters storage.PosterStorage,
	images storage.ImageService,
) *EventService {
	return &EventService{
		events:   events,
		fests:    fests,
		colleges: colleges,
		posters:  posters,
		images:   images,
	}
}

func (s *EventService) ListEvents(userID uint) ([]models.Event, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.GetByCollege(college.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list events")
	}
	return events, nil
}

func (s *EventService) CreateEvent(userID uint, req models.EventRequest) (*models.Event, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(college.ID, req.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkFestLinkage(college.ID, req.FestID, req.EventDate); err != nil {
		return nil, err
	}

	event, err := s.events.Create(&models.Event{
		CollegeID:   college.ID,
		FestID:      req.FestID,
		Name:        req.Name,
		Description: req.Description,
		EventDate:   req.EventDate,
		Fees:        req.Fees,
		Location:    req.Location,
		Capacity:    req.Capacity,
		TeamAllowed: req.TeamAllowed,
		Category:    req.Category,
		Mode:        req.Mode,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to create event")
	}
	return event, nil
}

func (s *EventService) UpdateEvent(userID, eventID uint, req models.EventRequest) (*models.Event, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}

	event, err := s.ownedEvent(college.ID, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(college.ID, req.Name, eventID); err != nil {
		return nil, err
	}
	if err := s.checkFestLinkage(college.ID, req.FestID, req.EventDate); err != nil {
		return nil, err
	}

	event.FestID = req.FestID
	event.Name = req.Name
	event.Description = req.Description
	event.EventDate = req.EventDate
	event.Fees = req.Fees
	event.Location = req.Location
	event.Capacity = req.Capacity
	event.TeamAllowed = req.TeamAllowed
	event.Category = req.Category
	event.Mode = req.Mode

	if err := s.events.Update(event); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to update event")
	}
	return event, nil
}

func (s *EventService) DeleteEvent(userID, eventID uint) error {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return err
	}

	if _, err := s.ownedEvent(college.ID, eventID); err != nil {
		return err
	}

	if err := s.events.Delete(eventID); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to delete event")
	}
	return nil
}

// UploadPoster stores a new poster and clears the approval flag; every
// upload requires re-approval.
func (s *EventService) UploadPoster(userID, eventID uint, filename, contentType string, size int64, file io.Reader) (*models.Event, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}

	event, err := s.ownedEvent(college.ID, eventID)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.New(apperr.Validation, "only image files are allowed")
	}
	if size > maxPosterSize {
		return nil, apperr.New(apperr.Validation, "file size must be less than 5MB")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to read poster file")
	}

	key := fmt.Sprintf("posters/event_%d_%s%s", eventID, utils.GenerateRandomString(8), filepath.Ext(filename))
	if err := s.posters.Upload(key, bytes.NewReader(data)); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, fmt.Sprintf("failed to upload poster for event %d", eventID))
	}

	imageID, err := s.images.Upload(bytes.NewReader(data), filename)
	if err != nil {
		_ = s.posters.Delete(key)
		return nil, apperr.Wrap(apperr.Internal, err, fmt.Sprintf("failed to generate thumbnail for event %d", eventID))
	}

	event.PosterKey = key
	event.PosterImageID = imageID
	event.PosterURL = s.posters.PublicURL(key)
	event.PosterThumbnailURL = s.images.ThumbnailURL(imageID)
	event.PosterApproved = false

	if err := s.events.Update(event); err != nil {
		_ = s.posters.Delete(key)
		_ = s.images.Delete(imageID)
		return nil, apperr.Wrap(apperr.Internal, err, "failed to save poster")
	}
	return event, nil
}

func (s *EventService) ApprovePoster(userID, eventID uint) error {
	return s.setPosterApproval(userID, eventID, true)
}

func (s *EventService) RejectPoster(userID, eventID uint) error {
	return s.setPosterApproval(userID, eventID, false)
}

func (s *EventService) setPosterApproval(userID, eventID uint, approved bool) error {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return err
	}

	event, err := s.ownedEvent(college.ID, eventID)
	if err != nil {
		return err
	}

	event.PosterApproved = approved
	if err := s.events.Update(event); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to save poster approval")
	}
	return nil
}

// DeletePoster clears the poster fields and removes the stored files. A
// storage delete failure is fatal.
func (s *EventService) DeletePoster(userID, eventID uint) error {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return err
	}

	event, err := s.ownedEvent(college.ID, eventID)
	if err != nil {
		return err
	}

	if event.PosterKey != "" {
		if err := s.posters.Delete(event.PosterKey); err != nil {
			return apperr.Wrap(apperr.Internal, err, fmt.Sprintf("failed to delete poster file for event %d", eventID))
		}
	}
	if event.PosterImageID != "" {
		if err := s.images.Delete(event.PosterImageID); err != nil {
			return apperr.Wrap(apperr.Internal, err, fmt.Sprintf("failed to delete poster image for event %d", eventID))
		}
	}

	event.PosterKey = ""
	event.PosterImageID = ""
	event.PosterURL = ""
	event.PosterThumbnailURL = ""
	event.PosterApproved = false

	if err := s.events.Update(event); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to clear poster")
	}
	return nil
}

func (s *EventService) ownedEvent(collegeID, eventID uint) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found or not owned by this college", eventID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up event")
	}
	if event.CollegeID != collegeID {
		return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found or not owned by this college", eventID)
	}
	return event, nil
}

func (s *EventService) checkNameUnique(collegeID uint, name string, excludeID uint) error {
	events, err := s.events.GetByCollege(collegeID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to list events")
	}
	for _, e := range events {
		if e.ID != excludeID && strings.EqualFold(e.Name, name) {
			return apperr.Newf(apperr.Conflict, "event name %q already exists for this college", name)
		}
	}
	return nil
}

// checkFestLinkage requires a supplied fest to belong to the same college
// and the event date to fall within the fest window, boundaries included.
func (s *EventService) checkFestLinkage(collegeID uint, festID *uint, eventDate string) error {
	if festID == nil {
		return nil
	}

	fest, err := s.fests.GetByID(*festID)
	if err != nil {
		if isNotFound(err) {
			return apperr.Newf(apperr.Validation, "invalid fest %d for this college", *festID)
		}
		return apperr.Wrap(apperr.Internal, err, "failed to look up fest")
	}
	if fest.CollegeID != collegeID {
		return apperr.Newf(apperr.Validation, "invalid fest %d for this college", *festID)
	}

	d, err := time.Parse(dateLayout, eventDate)
	if err != nil {
		return apperr.Newf(apperr.Internal, "invalid date format for event date %q", eventDate)
	}
	start, err := time.Parse(dateLayout, fest.StartDate)
	if err != nil {
		return apperr.Newf(apperr.Internal, "invalid date format for fest start date %q", fest.StartDate)
	}
	end, err := time.Parse(dateLayout, fest.EndDate)
	if err != nil {
		return apperr.Newf(apperr.Internal, "invalid date format for fest end date %q", fest.EndDate)
	}

	if d.Before(start) || d.After(end) {
		return apperr.New(apperr.Validation, "event date must be within fest date range")
	}
	return nil
}
