package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

// In-memory store fakes. Not-found is reported the same way the GORM
// repositories report it so the services' isNotFound checks hold.

var errAPIDown = errors.New("api down")

type fakeUsers struct {
	byID   map[uint]models.User
	nextID uint
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uint]models.User), nextID: 1}
}

func (f *fakeUsers) Create(user *models.User) (*models.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.byID[user.ID] = *user
	return user, nil
}

func (f *fakeUsers) GetByID(id uint) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) EmailExists(email string) (bool, error) {
	_, err := f.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeColleges struct {
	byID   map[uint]models.College
	nextID uint
}

func newFakeColleges() *fakeColleges {
	return &fakeColleges{byID: make(map[uint]models.College), nextID: 1}
}

func (f *fakeColleges) Create(college *models.College) (*models.College, error) {
	college.ID = f.nextID
	f.nextID++
	f.byID[college.ID] = *college
	return college, nil
}

func (f *fakeColleges) GetByID(id uint) (*models.College, error) {
	college, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &college, nil
}

func (f *fakeColleges) GetByUserID(userID uint) (*models.College, error) {
	for _, college := range f.byID {
		if college.UserID == userID {
			c := college
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeColleges) GetAll() ([]models.College, error) {
	all := make([]models.College, 0, len(f.byID))
	for _, college := range f.byID {
		all = append(all, college)
	}
	return all, nil
}

type fakeStudents struct {
	byID   map[uint]models.Student
	nextID uint
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{byID: make(map[uint]models.Student), nextID: 1}
}

func (f *fakeStudents) Create(student *models.Student) (*models.Student, error) {
	student.ID = f.nextID
	f.nextID++
	f.byID[student.ID] = *student
	return student, nil
}

func (f *fakeStudents) GetByID(id uint) (*models.Student, error) {
	student, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &student, nil
}

func (f *fakeStudents) GetByUserID(userID uint) (*models.Student, error) {
	for _, student := range f.byID {
		if student.UserID == userID {
			s := student
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeFests struct {
	byID   map[uint]models.Fest
	nextID uint
}

func newFakeFests() *fakeFests {
	return &fakeFests{byID: make(map[uint]models.Fest), nextID: 1}
}

func (f *fakeFests) Create(fest *models.Fest) (*models.Fest, error) {
	fest.ID = f.nextID
	f.nextID++
	f.byID[fest.ID] = *fest
	return fest, nil
}

func (f *fakeFests) GetByID(id uint) (*models.Fest, error) {
	fest, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &fest, nil
}

func (f *fakeFests) Update(fest *models.Fest) error {
	if _, ok := f.byID[fest.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.byID[fest.ID] = *fest
	return nil
}

func (f *fakeFests) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeFests) GetByCollege(collegeID uint) ([]models.Fest, error) {
	var fests []models.Fest
	for _, fest := range f.byID {
		if fest.CollegeID == collegeID {
			fests = append(fests, fest)
		}
	}
	return fests, nil
}

func (f *fakeFests) GetAll() ([]models.Fest, error) {
	all := make([]models.Fest, 0, len(f.byID))
	for _, fest := range f.byID {
		all = append(all, fest)
	}
	return all, nil
}

type fakeEvents struct {
	byID   map[uint]models.Event
	nextID uint
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{byID: make(map[uint]models.Event), nextID: 1}
}

func (f *fakeEvents) Create(event *models.Event) (*models.Event, error) {
	event.ID = f.nextID
	f.nextID++
	f.byID[event.ID] = *event
	return event, nil
}

func (f *fakeEvents) GetByID(id uint) (*models.Event, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &event, nil
}

func (f *fakeEvents) Update(event *models.Event) error {
	if _, ok := f.byID[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.byID[event.ID] = *event
	return nil
}

func (f *fakeEvents) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeEvents) GetByCollege(collegeID uint) ([]models.Event, error) {
	var events []models.Event
	for _, event := range f.byID {
		if event.CollegeID == collegeID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (f *fakeEvents) GetByFest(festID uint) ([]models.Event, error) {
	var events []models.Event
	for _, event := range f.byID {
		if event.FestID != nil && *event.FestID == festID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (f *fakeEvents) GetAll() ([]models.Event, error) {
	all := make([]models.Event, 0, len(f.byID))
	for _, event := range f.byID {
		all = append(all, event)
	}
	return all, nil
}

type fakeTeams struct {
	byID    map[uint]models.Team
	members []models.TeamMember
	nextID  uint
}

func newFakeTeams() *fakeTeams {
	return &fakeTeams{byID: make(map[uint]models.Team), nextID: 1}
}

func (f *fakeTeams) Create(team *models.Team) (*models.Team, error) {
	team.ID = f.nextID
	f.nextID++
	f.byID[team.ID] = *team
	return team, nil
}

func (f *fakeTeams) GetByID(id uint) (*models.Team, error) {
	team, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &team, nil
}

func (f *fakeTeams) AddMember(member *models.TeamMember) error {
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeTeams) IsMember(teamID, studentID uint) (bool, error) {
	for _, m := range f.members {
		if m.TeamID == teamID && m.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeams) membersOf(teamID uint) []uint {
	var ids []uint
	for _, m := range f.members {
		if m.TeamID == teamID {
			ids = append(ids, m.StudentID)
		}
	}
	return ids
}

type fakeRegistrations struct {
	byID   map[uint]models.EventRegistration
	nextID uint
}

func newFakeRegistrations() *fakeRegistrations {
	return &fakeRegistrations{byID: make(map[uint]models.EventRegistration), nextID: 1}
}

func (f *fakeRegistrations) Create(reg *models.EventRegistration) (*models.EventRegistration, error) {
	reg.ID = f.nextID
	f.nextID++
	f.byID[reg.ID] = *reg
	return reg, nil
}

func (f *fakeRegistrations) Update(reg *models.EventRegistration) error {
	if _, ok := f.byID[reg.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.byID[reg.ID] = *reg
	return nil
}

func (f *fakeRegistrations) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeRegistrations) GetByID(id uint) (*models.EventRegistration, error) {
	reg, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &reg, nil
}

func (f *fakeRegistrations) GetByEventAndStudent(eventID, studentID uint) (*models.EventRegistration, error) {
	for _, reg := range f.byID {
		if reg.EventID == eventID && reg.StudentID == studentID {
			r := reg
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRegistrations) CountByEvent(eventID uint) (int64, error) {
	var count int64
	for _, reg := range f.byID {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrations) GetByEvent(eventID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	for _, reg := range f.byID {
		if reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	return regs, nil
}

func (f *fakeRegistrations) GetByStudent(studentID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	for _, reg := range f.byID {
		if reg.StudentID == studentID {
			regs = append(regs, reg)
		}
	}
	return regs, nil
}

type fakePayments struct {
	byID          map[uint]models.Payment
	registrations *fakeRegistrations
	nextID        uint
}

func newFakePayments(registrations *fakeRegistrations) *fakePayments {
	return &fakePayments{byID: make(map[uint]models.Payment), registrations: registrations, nextID: 1}
}

func (f *fakePayments) Create(payment *models.Payment) (*models.Payment, error) {
	payment.ID = f.nextID
	f.nextID++
	f.byID[payment.ID] = *payment
	return payment, nil
}

func (f *fakePayments) Update(payment *models.Payment) error {
	if _, ok := f.byID[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.byID[payment.ID] = *payment
	return nil
}

func (f *fakePayments) GetByOrderID(orderID string) (*models.Payment, error) {
	for _, payment := range f.byID {
		if payment.RazorpayOrderID == orderID {
			p := payment
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayments) GetPaidByEvent(eventID uint) ([]models.Payment, error) {
	var paid []models.Payment
	for _, payment := range f.byID {
		if !strings.EqualFold(payment.Status, models.PaymentStatusPaid) {
			continue
		}
		reg, err := f.registrations.GetByID(payment.RegistrationID)
		if err != nil {
			continue
		}
		if reg.EventID == eventID {
			paid = append(paid, payment)
		}
	}
	return paid, nil
}

// Collaborator fakes.

type createdOrder struct {
	Amount   int
	Currency string
	Receipt  string
}

type fakeGateway struct {
	orders []createdOrder
	err    error
	nextID int
}

func (f *fakeGateway) CreateOrder(amountMinorUnits int, currency, receipt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.nextID++
	f.orders = append(f.orders, createdOrder{Amount: amountMinorUnits, Currency: currency, Receipt: receipt})
	return fmt.Sprintf("order_%d", f.nextID), nil
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	sent []sentEmail
	err  error
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(studentName, eventName, festName, eventDate string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF " + studentName + " " + eventName), nil
}

type fakePosterStorage struct {
	objects   map[string][]byte
	deleteErr error
}

func newFakePosterStorage() *fakePosterStorage {
	return &fakePosterStorage{objects: make(map[string][]byte)}
}

func (f *fakePosterStorage) Upload(key string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakePosterStorage) Delete(key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

func (f *fakePosterStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

type fakeImages struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	nextID    int
}

func (f *fakeImages) Upload(body io.Reader, filename string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if _, err := io.ReadAll(body); err != nil {
		return "", err
	}
	f.nextID++
	id := fmt.Sprintf("img-%d", f.nextID)
	f.uploaded = append(f.uploaded, id)
	return id, nil
}

func (f *fakeImages) Delete(imageID string) error {
	f.deleted = append(f.deleted, imageID)
	return nil
}

func (f *fakeImages) PublicURL(imageID string) string {
	return "https://images.test/" + imageID + "/public"
}

func (f *fakeImages) ThumbnailURL(imageID string) string {
	return "https://images.test/" + imageID + "/thumbnail"
}
