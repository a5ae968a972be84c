package app

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/app/appErrors"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/notify"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/session"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/store"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context) (model.User, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *MockSessionStore) Save(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func createTestContainer(sess session.Store) (*Container, *store.Repositories, *notify.Emitter) {
	logger := zap.NewNop()
	repos := store.NewRepositories(logger)
	repos.Seed(store.DefaultSeed())
	emitter := notify.NewEmitter(logger)

	c := &Container{
		repos:    repos,
		session:  sess,
		notifier: emitter,
		log:      logger,
		rnd:      rand.New(rand.NewSource(1)),
		section:  model.SectionDefault,
	}
	return c, repos, emitter
}

func loginAs(t *testing.T, c *Container, email string) {
	t.Helper()
	err := c.Login(context.Background(), model.LoginInput{Email: email, Password: "pw", Role: model.RoleCitizen})
	assert.NoError(t, err)
}

func lastNotification(t *testing.T, e *notify.Emitter) notify.Notification {
	t.Helper()
	active := e.Active()
	if len(active) == 0 {
		t.Fatal("no active notifications")
	}
	return active[len(active)-1]
}

func errorCode(err error) appErrors.ErrorCode {
	var e appErrors.AppError
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func TestLogin_MissingFields(t *testing.T) {
	c, _, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	err := c.Login(context.Background(), model.LoginInput{})

	assert.Equal(t, appErrors.ValidationFailed, errorCode(err))
	assert.Nil(t, c.Snapshot().CurrentUser)
	n := lastNotification(t, emitter)
	assert.Equal(t, notify.SeverityError, n.Severity)
	assert.Equal(t, "Please fill in all fields.", n.Text)
}

func TestLogin_DerivesDisplayName(t *testing.T) {
	c, _, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	c.OpenModal(model.ModalLogin)

	loginAs(t, c, "john.doe@example.com")

	snap := c.Snapshot()
	assert.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "John Doe", snap.CurrentUser.Name)
	assert.Equal(t, "john.doe@example.com", snap.CurrentUser.Email)
	assert.Equal(t, model.RoleCitizen, snap.CurrentUser.Role)
	assert.NotEmpty(t, snap.CurrentUser.ID)
	assert.False(t, snap.Modals.Login)
	assert.Equal(t, notify.SeveritySuccess, lastNotification(t, emitter).Severity)
}

func TestLogin_SingleSegmentLocalPart(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	loginAs(t, c, "a@b.com")

	assert.Equal(t, "A", c.Snapshot().CurrentUser.Name)
}

func TestLogin_PersistsSession(t *testing.T) {
	mockSess := new(MockSessionStore)
	c, _, _ := createTestContainer(mockSess)

	mockSess.On("Save", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Name == "John Doe" && u.Email == "john.doe@example.com"
	})).Return(nil)

	loginAs(t, c, "john.doe@example.com")

	mockSess.AssertExpectations(t)
}

func TestSignup_Success(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	c.OpenModal(model.ModalSignup)

	err := c.Signup(context.Background(), model.SignupInput{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "pw",
		Role:     model.RolePolitician,
		Location: "Springfield, IL",
	})

	assert.NoError(t, err)
	snap := c.Snapshot()
	assert.Equal(t, "Jane Smith", snap.CurrentUser.Name)
	assert.Equal(t, time.Now().Format("January 2006"), snap.CurrentUser.JoinDate)
	assert.False(t, snap.Modals.Signup)
}

func TestSignup_MissingLocation(t *testing.T) {
	c, _, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	err := c.Signup(context.Background(), model.SignupInput{
		Name: "Jane", Email: "jane@example.com", Password: "pw", Role: model.RoleCitizen,
	})

	assert.Equal(t, appErrors.ValidationFailed, errorCode(err))
	assert.Nil(t, c.Snapshot().CurrentUser)
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
}

func TestLogout(t *testing.T) {
	mockSess := new(MockSessionStore)
	c, _, _ := createTestContainer(mockSess)
	mockSess.On("Save", mock.Anything, mock.Anything).Return(nil)
	mockSess.On("Clear", mock.Anything).Return(nil)
	loginAs(t, c, "john.doe@example.com")
	c.Navigate("profile")

	c.Logout(context.Background())

	snap := c.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, model.SectionDefault, snap.CurrentSection)
	mockSess.AssertCalled(t, "Clear", mock.Anything)
}

func TestReportIssue_Scenario(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	statsBefore := c.Snapshot().Stats

	err := c.ReportIssue(context.Background(), model.ReportIssueInput{
		Title:       "Leak",
		Category:    model.CategoryInfrastructure,
		Description: "Water leak",
	})

	assert.NoError(t, err)
	snap := c.Snapshot()
	assert.Len(t, snap.Issues, 4)

	issue := snap.Issues[0]
	assert.Equal(t, "Leak", issue.Title)
	assert.Equal(t, model.StatusOpen, issue.Status)
	assert.Equal(t, "John Doe", issue.Author)
	assert.Equal(t, "Location not specified", issue.Location)
	assert.GreaterOrEqual(t, issue.Votes, 1)
	assert.LessOrEqual(t, issue.Votes, 50)
	assert.GreaterOrEqual(t, issue.Comments, 1)
	assert.LessOrEqual(t, issue.Comments, 20)

	assert.Equal(t, statsBefore.TotalIssues+1, snap.Stats.TotalIssues)
	assert.Equal(t, "New issue: Leak", repos.Activities.All()[0].Description)
	assert.Equal(t, "plus-circle", repos.Activities.All()[0].Icon)
	assert.False(t, snap.Modals.Report)
	assert.Equal(t, "Issue reported successfully!", lastNotification(t, emitter).Text)
}

func TestReportIssue_Urgent(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")

	err := c.ReportIssue(context.Background(), model.ReportIssueInput{
		Title:       "Gas smell",
		Category:    model.CategorySafety,
		Description: "Strong gas smell near the school",
		Location:    "Oak Avenue",
		Urgent:      true,
	})

	assert.NoError(t, err)
	issue := c.Snapshot().Issues[0]
	assert.Equal(t, model.StatusUrgent, issue.Status)
	assert.Equal(t, "Oak Avenue", issue.Location)
}

func TestReportIssue_EmptyTitle(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	c.OpenModal(model.ModalReport)
	activitiesBefore := len(repos.Activities.All())

	err := c.ReportIssue(context.Background(), model.ReportIssueInput{
		Category:    model.CategoryInfrastructure,
		Description: "Water leak",
	})

	assert.Equal(t, appErrors.ValidationFailed, errorCode(err))
	snap := c.Snapshot()
	assert.Len(t, snap.Issues, 3)
	assert.True(t, snap.Modals.Report, "report modal must stay open on validation failure")
	assert.Len(t, repos.Activities.All(), activitiesBefore)
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
}

func TestReportIssue_LoggedOut(t *testing.T) {
	c, _, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	err := c.ReportIssue(context.Background(), model.ReportIssueInput{
		Title: "Leak", Category: model.CategoryInfrastructure, Description: "Water leak",
	})

	assert.Equal(t, appErrors.LoginRequired, errorCode(err))
	snap := c.Snapshot()
	assert.Len(t, snap.Issues, 3)
	assert.True(t, snap.Modals.Login, "login modal opens as recovery affordance")
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
}

func TestVote_TwiceAddsTwoVotesAndTwoActivities(t *testing.T) {
	c, repos, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	target := repos.Issues.All()[0]
	activitiesBefore := len(repos.Activities.All())

	assert.NoError(t, c.Vote(context.Background(), target.ID))
	assert.NoError(t, c.Vote(context.Background(), target.ID))

	assert.Equal(t, target.Votes+2, repos.Issues.All()[0].Votes)
	activities := repos.Activities.All()
	assert.Len(t, activities, activitiesBefore+2)
	assert.Equal(t, "Supported an issue", activities[0].Description)
	assert.Equal(t, "Supported an issue", activities[1].Description)
}

func TestVote_UnknownIDIsSilentNoOp(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	issuesBefore := repos.Issues.All()
	activitiesBefore := len(repos.Activities.All())
	notificationsBefore := len(emitter.Active())

	err := c.Vote(context.Background(), "no-such-issue")

	assert.NoError(t, err)
	assert.Equal(t, issuesBefore, repos.Issues.All())
	assert.Len(t, repos.Activities.All(), activitiesBefore)
	assert.Len(t, emitter.Active(), notificationsBefore)
}

func TestVote_LoggedOut(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	target := repos.Issues.All()[0]

	err := c.Vote(context.Background(), target.ID)

	assert.Equal(t, appErrors.LoginRequired, errorCode(err))
	assert.Equal(t, target.Votes, repos.Issues.All()[0].Votes)
	assert.True(t, c.Snapshot().Modals.Login)
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
}

func TestMessagePolitician_EmptyTextIsCancelled(t *testing.T) {
	c, repos, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	activitiesBefore := len(repos.Activities.All())

	err := c.MessagePolitician(context.Background(), "Sarah Davis", "")

	assert.NoError(t, err)
	assert.Len(t, repos.Activities.All(), activitiesBefore)
}

func TestMessagePolitician_LogsActivity(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")

	err := c.MessagePolitician(context.Background(), "Sarah Davis", "Please fix the potholes")

	assert.NoError(t, err)
	assert.Equal(t, "Sent message to Sarah Davis", repos.Activities.All()[0].Description)
	assert.Equal(t, "Message sent successfully!", lastNotification(t, emitter).Text)
}

func TestFollowPolitician_LoggedOut(t *testing.T) {
	c, repos, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	target := repos.Politicians.All()[0]
	activitiesBefore := len(repos.Activities.All())

	err := c.FollowPolitician(context.Background(), target.ID)

	assert.Equal(t, appErrors.LoginRequired, errorCode(err))
	assert.True(t, c.Snapshot().Modals.Login)
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
	assert.Len(t, repos.Activities.All(), activitiesBefore)
}

func TestFollowPolitician_LogsActivity(t *testing.T) {
	c, repos, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	loginAs(t, c, "john.doe@example.com")
	target := repos.Politicians.All()[1]

	err := c.FollowPolitician(context.Background(), target.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Started following a representative", repos.Activities.All()[0].Description)
}

func TestUpdateSettings_MutatesInPlace(t *testing.T) {
	mockSess := new(MockSessionStore)
	c, _, _ := createTestContainer(mockSess)
	mockSess.On("Save", mock.Anything, mock.Anything).Return(nil)
	loginAs(t, c, "john.doe@example.com")
	idBefore := c.Snapshot().CurrentUser.ID

	err := c.UpdateSettings(context.Background(), model.SettingsInput{
		Name: "Johnny Doe", Email: "johnny@example.com", Location: "Shelbyville",
	})

	assert.NoError(t, err)
	u := c.Snapshot().CurrentUser
	assert.Equal(t, idBefore, u.ID)
	assert.Equal(t, "Johnny Doe", u.Name)
	assert.Equal(t, "johnny@example.com", u.Email)
	assert.Equal(t, "Shelbyville", u.Location)
	mockSess.AssertNumberOfCalls(t, "Save", 2) // login + settings
}

func TestUpdateSettings_LoggedOut(t *testing.T) {
	c, _, emitter := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	err := c.UpdateSettings(context.Background(), model.SettingsInput{Name: "X", Email: "x@y.z", Location: "Here"})

	assert.Equal(t, appErrors.LoginRequired, errorCode(err))
	// settings rejection opens no modal
	assert.False(t, c.Snapshot().Modals.Login)
	assert.Equal(t, notify.SeverityError, lastNotification(t, emitter).Severity)
}

func TestChangeFilters_MergesOnlyProvidedKeys(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	cat := model.CategoryHealthcare
	c.ChangeFilters(model.FilterPatch{Category: &cat})

	search := "wait times"
	c.ChangeFilters(model.FilterPatch{Search: &search})

	f := c.Snapshot().Filters
	assert.Equal(t, model.CategoryHealthcare, f.Category)
	assert.Equal(t, "wait times", f.Search)
	assert.Equal(t, "", f.Status)

	empty := ""
	c.ChangeFilters(model.FilterPatch{Category: &empty})
	assert.Equal(t, "", c.Snapshot().Filters.Category)
	assert.Equal(t, "wait times", c.Snapshot().Filters.Search)
}

func TestCloseModal_Idempotent(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	c.CloseModal(model.ModalReport)
	before := c.Snapshot()
	c.CloseModal(model.ModalReport)

	assert.Equal(t, before.Modals, c.Snapshot().Modals)
}

func TestOpenModal_UnknownKeyIgnored(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))

	c.OpenModal("mystery")

	assert.Equal(t, model.Modals{}, c.Snapshot().Modals)
}

func TestSnapshot_FilteredIssuesReactToFilterChange(t *testing.T) {
	c, _, _ := createTestContainer(session.NewMemoryStore(zap.NewNop()))
	assert.Len(t, c.Snapshot().VisibleIssues, 3)

	cat := model.CategoryHealthcare
	c.ChangeFilters(model.FilterPatch{Category: &cat})

	visible := c.Snapshot().VisibleIssues
	assert.Len(t, visible, 1)
	assert.Equal(t, model.CategoryHealthcare, visible[0].Category)
}

func TestRestoreSession(t *testing.T) {
	sess := session.NewMemoryStore(zap.NewNop())
	saved := model.User{ID: "u1", Name: "John Doe", Email: "john.doe@example.com", Role: model.RoleCitizen}
	assert.NoError(t, sess.Save(context.Background(), saved))
	c, _, _ := createTestContainer(sess)

	c.RestoreSession(context.Background())

	got := c.Snapshot().CurrentUser
	assert.NotNil(t, got)
	assert.Equal(t, saved, *got)
}

func TestRestoreSession_CorruptRecordStartsLoggedOut(t *testing.T) {
	sess := session.NewMemoryStore(zap.NewNop())
	assert.NoError(t, sess.Save(context.Background(), model.User{ID: "u1"}))
	sess.Corrupt()
	c, _, _ := createTestContainer(sess)

	c.RestoreSession(context.Background())

	assert.Nil(t, c.Snapshot().CurrentUser)
}

func TestDisplayNameFromEmail(t *testing.T) {
	cases := map[string]string{
		"john.doe@example.com":       "John Doe",
		"a@b.com":                    "A",
		"mary.jane.watson@daily.com": "Mary Jane Watson",
		"noat":                       "Noat",
	}
	for email, want := range cases {
		assert.Equal(t, want, displayNameFromEmail(email), email)
	}
}
