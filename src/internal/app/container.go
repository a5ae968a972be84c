// Package app implements the application state container: the single
// source of truth for the current user, all entity collections, UI filters,
// modal visibility and the active section. Every mutation in the system
// goes through one of the container operations below; collaborators only
// ever read state through Snapshot.
package app

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/app/appErrors"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/ident"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/model"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/notify"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/session"
	"github.com/KNV-Sai/FEDW-Project-CitizensConnect/src/internal/store"
)

type Container struct {
	repos    *store.Repositories
	session  session.Store
	notifier *notify.Emitter
	log      *zap.Logger
	rnd      *rand.Rand

	mu      sync.Mutex
	user    *model.User
	filters model.Filters
	modals  model.Modals
	section string
}

func New(repos *store.Repositories, sess session.Store, notifier *notify.Emitter, logger *zap.Logger) *Container {
	src := rand.NewSource(time.Now().UnixNano())
	return &Container{
		repos:    repos,
		session:  sess,
		notifier: notifier,
		log:      logger,
		rnd:      rand.New(src),
		section:  model.SectionDefault,
	}
}

// RestoreSession loads the persisted user record, if any. Called exactly
// once at startup; an unreadable record is the same as no record.
func (c *Container) RestoreSession(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok, err := c.session.Load(ctx)
	if err != nil {
		c.log.Warn("session restore failed, starting logged out", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	c.user = &u
	c.log.Info("session restored", zap.String("user", u.ID), zap.String("name", u.Name))
}

func (c *Container) Login(ctx context.Context, in model.LoginInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if in.Email == "" || in.Password == "" || in.Role == "" {
		c.notifier.Notify("Please fill in all fields.", notify.SeverityError)
		return appErrors.AppError{Code: appErrors.ValidationFailed, Message: "email, password and role required"}
	}
	u := model.User{
		ID:       ident.New(),
		Name:     displayNameFromEmail(in.Email),
		Email:    in.Email,
		Role:     in.Role,
		Location: "Springfield, IL",
		JoinDate: "January 2024",
	}
	c.user = &u
	c.persistSession(ctx)
	c.modals.Login = false
	c.notifier.Notify("Login successful! Welcome back.", notify.SeveritySuccess)
	c.log.Info("user logged in", zap.String("user", u.ID), zap.String("role", u.Role))
	return nil
}

func (c *Container) Signup(ctx context.Context, in model.SignupInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" || in.Location == "" {
		c.notifier.Notify("Please fill in all fields.", notify.SeverityError)
		return appErrors.AppError{Code: appErrors.ValidationFailed, Message: "all signup fields required"}
	}
	u := model.User{
		ID:       ident.New(),
		Name:     in.Name,
		Email:    in.Email,
		Role:     in.Role,
		Location: in.Location,
		JoinDate: time.Now().Format("January 2006"),
	}
	c.user = &u
	c.persistSession(ctx)
	c.modals.Signup = false
	c.notifier.Notify("Account created successfully! Welcome to CitizenConnect.", notify.SeveritySuccess)
	c.log.Info("user signed up", zap.String("user", u.ID), zap.String("role", u.Role))
	return nil
}

func (c *Container) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.persistSession(ctx)
	c.section = model.SectionDefault
	c.notifier.Notify("You have been logged out successfully.", notify.SeveritySuccess)
	c.log.Info("user logged out")
}

func (c *Container) ReportIssue(ctx context.Context, in model.ReportIssueInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		c.notifier.Notify("Please log in to report an issue.", notify.SeverityError)
		c.modals.Login = true
		return appErrors.AppError{Code: appErrors.LoginRequired, Message: "login required to report an issue"}
	}
	if in.Title == "" || in.Category == "" || in.Description == "" {
		c.notifier.Notify("Please fill in all required fields.", notify.SeverityError)
		return appErrors.AppError{Code: appErrors.ValidationFailed, Message: "title, category and description required"}
	}
	location := in.Location
	if location == "" {
		location = "Location not specified"
	}
	status := model.StatusOpen
	if in.Urgent {
		status = model.StatusUrgent
	}
	issue := model.Issue{
		ID:          ident.New(),
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Location:    location,
		Status:      status,
		Author:      c.user.Name,
		Date:        time.Now().Format("1/2/2006"),
		Votes:       c.rnd.Intn(50) + 1,
		Comments:    c.rnd.Intn(20) + 1,
	}
	c.repos.Issues.Add(issue)
	c.modals.Report = false
	c.notifier.Notify("Issue reported successfully!", notify.SeveritySuccess)
	c.addActivity("reported", "New issue: "+in.Title)
	return nil
}

func (c *Container) Vote(ctx context.Context, issueID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		c.notifier.Notify("Please log in to vote on issues.", notify.SeverityError)
		c.modals.Login = true
		return appErrors.AppError{Code: appErrors.LoginRequired, Message: "login required to vote"}
	}
	// An unknown id is a silent no-op, not an error.
	if !c.repos.Issues.IncrementVotes(issueID) {
		return nil
	}
	c.notifier.Notify("Your support has been recorded.", notify.SeveritySuccess)
	c.addActivity("voted", "Supported an issue")
	return nil
}

// MessagePolitician records the action only; the message itself is not
// persisted anywhere. Empty text means the user cancelled: no-op, no error.
func (c *Container) MessagePolitician(ctx context.Context, name, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		c.notifier.Notify("Please log in to send messages.", notify.SeverityError)
		c.modals.Login = true
		return appErrors.AppError{Code: appErrors.LoginRequired, Message: "login required to send messages"}
	}
	if text == "" {
		return nil
	}
	c.notifier.Notify("Message sent successfully!", notify.SeveritySuccess)
	c.addActivity("messaged", "Sent message to "+name)
	return nil
}

// FollowPolitician records the action only; no follow relationship is
// stored.
func (c *Container) FollowPolitician(ctx context.Context, politicianID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		c.notifier.Notify("Please log in to follow representatives.", notify.SeverityError)
		c.modals.Login = true
		return appErrors.AppError{Code: appErrors.LoginRequired, Message: "login required to follow representatives"}
	}
	if p, err := c.repos.Politicians.Get(politicianID); err == nil {
		c.log.Debug("follow recorded", zap.String("politician", p.Name))
	}
	c.notifier.Notify("You are now following this representative!", notify.SeveritySuccess)
	c.addActivity("followed", "Started following a representative")
	return nil
}

func (c *Container) UpdateSettings(ctx context.Context, in model.SettingsInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		// Unlike the other gated actions this does not open the login
		// modal; the settings form is only reachable when rendered logged
		// in.
		c.notifier.Notify("Please log in to update settings.", notify.SeverityError)
		return appErrors.AppError{Code: appErrors.LoginRequired, Message: "login required to update settings"}
	}
	c.user.Name = in.Name
	c.user.Email = in.Email
	c.user.Location = in.Location
	c.persistSession(ctx)
	c.notifier.Notify("Settings updated successfully!", notify.SeveritySuccess)
	c.log.Info("settings updated", zap.String("user", c.user.ID))
	return nil
}

// ChangeFilters merges the provided keys into the current filters.
func (c *Container) ChangeFilters(patch model.FilterPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if patch.Category != nil {
		c.filters.Category = *patch.Category
	}
	if patch.Status != nil {
		c.filters.Status = *patch.Status
	}
	if patch.Search != nil {
		c.filters.Search = *patch.Search
	}
}

func (c *Container) Navigate(section string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.section = section
}

func (c *Container) OpenModal(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setModal(key, true)
}

// CloseModal is idempotent; closing an already-closed modal changes
// nothing.
func (c *Container) CloseModal(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setModal(key, false)
}

func (c *Container) setModal(key string, open bool) {
	switch key {
	case model.ModalLogin:
		c.modals.Login = open
	case model.ModalSignup:
		c.modals.Signup = open
	case model.ModalReport:
		c.modals.Report = open
	default:
		c.log.Debug("unknown modal key ignored", zap.String("key", key))
	}
}

// persistSession mirrors the current-user value into the session store.
// Storage failures are logged, not surfaced: the in-memory state is already
// updated and stays authoritative for this session.
func (c *Container) persistSession(ctx context.Context) {
	var err error
	if c.user != nil {
		err = c.session.Save(ctx, *c.user)
	} else {
		err = c.session.Clear(ctx)
	}
	if err != nil {
		c.log.Warn("session persist failed", zap.Error(err))
	}
}

func (c *Container) addActivity(kind, description string) {
	icon := "circle"
	if kind == "reported" {
		icon = "plus-circle"
	}
	c.repos.Activities.Add(model.Activity{
		ID:          ident.New(),
		Type:        kind,
		Description: description,
		Time:        "Just now",
		Icon:        icon,
	})
}

// displayNameFromEmail derives a display name from the email local-part:
// each dot-separated segment is capitalized and the segments are joined
// with spaces ("john.doe@example.com" becomes "John Doe").
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	parts := strings.Split(local, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
