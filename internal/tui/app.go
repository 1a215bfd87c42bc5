package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/statelab/internal/bank"
	"github.com/jask/statelab/internal/demos"
	"github.com/jask/statelab/internal/forms"
	"github.com/jask/statelab/internal/i18n"
	"github.com/jask/statelab/internal/logger"
	"github.com/jask/statelab/internal/placeholder"
	"github.com/jask/statelab/internal/store"
)

// API is the subset of the REST client used by the about view.
type API interface {
	ListUsers(ctx context.Context) ([]placeholder.User, error)
	CreatePost(ctx context.Context, p placeholder.NewPost) (placeholder.Post, error)
}

// Deps are the shared stores and services the views read and mutate.
type Deps struct {
	Auth     *store.Auth
	Theme    *store.Theme
	Language *store.Language
	Teller   *bank.Teller
	API      API
}

type Options struct {
	StartRoute string
	LoginName  string
}

// App ties together views.
type App struct {
	ctx       context.Context
	deps      Deps
	loginName string
	keys      *keyRegistry
	help      help.Model
	spinner   spinner.Model
	styles    styles
	route     route
	width     int
	status    string
	statusErr bool

	modal       modalState
	field       int
	inputBuffer string

	counter  demos.Counter
	slides   *demos.Slides
	feedback *demos.Feedback
	aspect   int
	contact  forms.ContactForm

	users usersState
	post  postState

	amount  string
	bankErr error

	callback *demos.CallbackDemo
}

type usersState struct {
	requested bool
	loading   bool
	list      []placeholder.User
	failure   string
}

type postState struct {
	title   string
	body    string
	userID  string
	loading bool
	err     error
	failure string
	created *placeholder.Post
	seq     int
}

type modalState string

const (
	modalNone    modalState = ""
	modalContact modalState = "contact"
	modalPost    modalState = "post"
	modalAmount  modalState = "amount"
	modalGoto    modalState = "goto"
)

const defaultWidth = 100

func New(ctx context.Context, deps Deps, opts Options) *App {
	start := routeHome
	if found, _, ok := LookupRoute(opts.StartRoute); ok {
		start = route(found)
	}
	loginName := opts.LoginName
	if loginName == "" {
		loginName = "Ratnesh Singh"
	}
	a := &App{
		ctx:       ctx,
		deps:      deps,
		loginName: loginName,
		keys:      newKeyRegistry(defaultKeyBindings()),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		route:     start,
		width:     defaultWidth,
		slides:    demos.NewSlides(demos.DefaultSlides),
		feedback:  demos.NewFeedback(),
		callback:  demos.NewCallbackDemo(),
		post:      postState{userID: "1"},
	}
	a.restyle()
	return a
}

// Attach subscribes the app to the shared stores so that every change
// reaches Update as a storeChangedMsg. send must not block: wrap
// Program.Send in a goroutine, since stores notify from inside Update.
func (a *App) Attach(send func(tea.Msg)) (detach func()) {
	unsubs := []func(){
		a.deps.Auth.Subscribe(func(*store.Identity) { send(storeChangedMsg{store: "auth"}) }),
		a.deps.Theme.Subscribe(func(store.ThemeMode) { send(storeChangedMsg{store: "theme"}) }),
		a.deps.Language.Subscribe(func(i18n.Language) { send(storeChangedMsg{store: "language"}) }),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func (a *App) Init() tea.Cmd {
	return a.enterRoute(a.route)
}

func (a *App) restyle() {
	a.styles = newStyles(a.deps.Theme.Get())
	a.help.Styles.ShortKey = a.styles.helpKey
	a.help.Styles.ShortDesc = a.styles.helpDesc
	a.help.Styles.ShortSeparator = a.styles.helpDivider
	a.spinner.Style = a.styles.section
}

func (a *App) enterRoute(r route) tea.Cmd {
	log := logger.With("tui")
	log.Debug().Str("from", string(a.route)).Str("to", string(r)).Msg("route change")
	a.route = r
	a.status, a.statusErr = "", false
	if r == routeAbout && !a.users.requested {
		a.users.requested = true
		a.users.loading = true
		return tea.Batch(a.fetchUsersCmd(), a.spinner.Tick)
	}
	return nil
}

func (a *App) loading() bool {
	return a.users.loading || a.post.loading
}

func (a *App) setStatus(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) setError(s string) {
	a.status, a.statusErr = s, true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.With("tui")
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleKey(m)
	case storeChangedMsg:
		log.Debug().Str("store", m.store).Msg("store changed")
		if m.store == "theme" {
			a.restyle()
		}
	case usersMsg:
		a.users.loading = false
		a.users.list = []placeholder.User(m)
		a.users.failure = ""
	case usersErrMsg:
		log.Error().Err(m.error).Msg("fetch users")
		a.users.loading = false
		a.users.failure = "Failed to fetch user data: " + m.Error()
	case postCreatedMsg:
		p := placeholder.Post(m)
		a.post.loading = false
		a.post.created = &p
		a.post.title, a.post.body, a.post.userID = "", "", "1"
		a.post.seq++
		return a, clearSuccessAfter(a.post.seq)
	case postErrMsg:
		log.Error().Err(m.error).Msg("create post")
		a.post.loading = false
		a.post.failure = "Failed to create post: " + m.Error()
	case clearSuccessMsg:
		if m.seq == a.post.seq {
			a.post.created = nil
		}
	case spinner.TickMsg:
		if !a.loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	}
	return a, nil
}

// commands
func (a *App) fetchUsersCmd() tea.Cmd {
	ctx, api := a.ctx, a.deps.API
	return func() tea.Msg {
		users, err := api.ListUsers(ctx)
		if err != nil {
			return usersErrMsg{err}
		}
		return usersMsg(users)
	}
}

func (a *App) createPostCmd(p placeholder.NewPost) tea.Cmd {
	ctx, api := a.ctx, a.deps.API
	return func() tea.Msg {
		created, err := api.CreatePost(ctx, p)
		if err != nil {
			return postErrMsg{err}
		}
		return postCreatedMsg(created)
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keys.action(m, string(a.route))
	if !ok {
		return a, nil
	}
	switch action {
	case "quit":
		return a, tea.Quit
	case "route":
		idx := int(m.String()[0] - '1')
		if idx >= 0 && idx < len(routes) {
			return a, a.enterRoute(routes[idx].path)
		}
		return a, nil
	case "goto":
		a.inputBuffer = ""
		a.openModal(modalGoto)
		return a, nil
	}

	switch a.route {
	case routeHome:
		a.handleHomeAction(action)
	case routeAbout:
		a.handleAboutAction(action)
	case routeTheme:
		a.handleThemeAction(action)
	case routeAuth:
		a.handleAuthAction(action)
	case routeBank:
		a.handleBankAction(action)
	case routeCallback:
		a.handleCallbackAction(action)
	}
	return a, nil
}

func (a *App) handleHomeAction(action string) {
	switch action {
	case "increment":
		a.counter.Increment()
	case "decrement":
		a.counter.Decrement()
	case "reset-count":
		a.counter.Reset()
	case "slide-next":
		a.slides.Next()
	case "slide-prev":
		a.slides.Prev()
	case "slide-restart":
		a.slides.Restart()
	case "aspect-down":
		if a.aspect < len(demos.Aspects)-1 {
			a.aspect++
		}
	case "aspect-up":
		if a.aspect > 0 {
			a.aspect--
		}
	case "upvote":
		a.feedback.Upvote(a.aspect)
	case "downvote":
		a.feedback.Downvote(a.aspect)
	case "edit":
		a.openModal(modalContact)
	}
}

func (a *App) handleAboutAction(action string) {
	switch action {
	case "auth":
		a.toggleAuth()
	case "edit":
		a.openModal(modalPost)
	}
}

func (a *App) handleThemeAction(action string) {
	switch action {
	case "toggle-theme":
		a.deps.Theme.Toggle()
	case "toggle-language":
		a.deps.Language.Toggle()
	}
}

func (a *App) handleAuthAction(action string) {
	if action == "auth" {
		a.toggleAuth()
	}
}

func (a *App) toggleAuth() {
	if a.deps.Auth.User() == nil {
		a.deps.Auth.Login(a.loginName)
		return
	}
	a.deps.Auth.Logout()
}

func (a *App) handleBankAction(action string) {
	teller := a.deps.Teller
	switch action {
	case "edit":
		a.openModal(modalAmount)
	case "deposit", "withdraw":
		amount, err := bank.ParseAmount(a.amount)
		if err != nil {
			a.bankErr = err
			return
		}
		var cmd bank.Command = bank.Deposit{Amount: amount}
		if action == "withdraw" {
			// a disabled control is inert
			if !teller.CanWithdraw(amount) {
				return
			}
			cmd = bank.Withdraw{Amount: amount}
		}
		if _, err := teller.Apply(cmd); err != nil {
			a.bankErr = err
			return
		}
		a.amount, a.bankErr = "", nil
	case "reset":
		if _, err := teller.Apply(bank.Reset{}); err != nil {
			a.bankErr = err
			return
		}
		a.bankErr = nil
	}
}

// withdrawEnabled mirrors the disabled state of the withdraw control.
func (a *App) withdrawEnabled() bool {
	amount, err := bank.ParseAmount(a.amount)
	return err == nil && a.deps.Teller.CanWithdraw(amount)
}

func (a *App) handleCallbackAction(action string) {
	switch action {
	case "increment":
		a.callback.ClickIncrement()
	case "toggle":
		a.callback.ClickToggle()
	}
}

// modal editing
func (a *App) openModal(m modalState) {
	a.modal = m
	a.field = 0
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.field = 0
}

func (a *App) fieldCount() int {
	switch a.modal {
	case modalContact:
		return forms.ContactFieldCount
	case modalPost:
		return 3
	default:
		return 1
	}
}

func (a *App) postField(i int) *string {
	switch i {
	case 1:
		return &a.post.body
	case 2:
		return &a.post.userID
	default:
		return &a.post.title
	}
}

func (a *App) fieldValue() string {
	switch a.modal {
	case modalContact:
		return a.contact.Field(a.field)
	case modalPost:
		return *a.postField(a.field)
	case modalAmount:
		return a.amount
	default:
		return a.inputBuffer
	}
}

// setFieldValue writes the focused field; any edit clears the shown error.
func (a *App) setFieldValue(v string) {
	switch a.modal {
	case modalContact:
		a.contact.Edit(a.field, v)
	case modalPost:
		*a.postField(a.field) = v
		a.post.err = nil
	case modalAmount:
		a.amount = v
		a.bankErr = nil
	default:
		a.inputBuffer = v
	}
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, _ := a.keys.action(m, scopeEditing)
	switch action {
	case "quit":
		return a, tea.Quit
	case "cancel":
		a.closeModal()
		return a, nil
	case "next-field":
		a.field = (a.field + 1) % a.fieldCount()
		return a, nil
	case "prev-field":
		n := a.fieldCount()
		a.field = (a.field + n - 1) % n
		return a, nil
	case "submit":
		return a, a.submitModal()
	}
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if r := []rune(a.fieldValue()); len(r) > 0 {
			a.setFieldValue(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		a.setFieldValue(a.fieldValue() + " ")
	case tea.KeyRunes:
		a.setFieldValue(a.fieldValue() + string(m.Runes))
	}
	return a, nil
}

func (a *App) submitModal() tea.Cmd {
	switch a.modal {
	case modalContact:
		if err := a.contact.Submit(); err != nil {
			return nil
		}
		a.closeModal()
		a.setStatus("contact form submitted")
	case modalPost:
		if a.post.loading {
			return nil
		}
		userID, err := strconv.Atoi(a.post.userID)
		if err != nil {
			userID = 0
		}
		p, err := forms.BuildPost(a.post.title, a.post.body, userID)
		if err != nil {
			a.post.err = err
			return nil
		}
		a.closeModal()
		a.post.loading = true
		a.post.err, a.post.failure, a.post.created = nil, "", nil
		return tea.Batch(a.createPostCmd(p), a.spinner.Tick)
	case modalAmount:
		a.closeModal()
	case modalGoto:
		path := a.inputBuffer
		a.closeModal()
		found, suggestion, ok := LookupRoute(path)
		if !ok {
			a.setError(fmt.Sprintf("no route %s (did you mean %s?)", normalizePath(path), suggestion))
			return nil
		}
		return a.enterRoute(route(found))
	}
	return nil
}
