package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/statelab/internal/bank"
	"github.com/jask/statelab/internal/demos"
	"github.com/jask/statelab/internal/forms"
	"github.com/jask/statelab/internal/i18n"
	"github.com/jask/statelab/internal/store"
)

func (a *App) View() string {
	var body string
	switch a.route {
	case routeAbout:
		body = a.renderAbout()
	case routeTheme:
		body = a.renderTheme()
	case routeAuth:
		body = a.renderAuthPage()
	case routeBank:
		body = a.renderBank()
	case routeCallback:
		body = a.renderCallback()
	default:
		body = a.renderHome()
	}
	if a.modal == modalGoto {
		body += "\n\n" + a.renderGoto()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderNavbar(),
		body,
		"",
		a.renderStatusBar(),
		a.renderFooter(),
	)
}

func (a *App) renderNavbar() string {
	s := a.styles
	parts := []string{s.navApp.Render("statelab")}
	for i, r := range routes {
		label := fmt.Sprintf("%d %s", i+1, r.title)
		if r.path == a.route {
			parts = append(parts, s.tabOn.Render(label))
		} else {
			parts = append(parts, s.tabOff.Render(label))
		}
	}
	left := strings.Join(parts, "")
	right := s.navApp.Render(a.deps.Auth.SignedInAs())
	width := max(1, a.width)
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return renderBar(s.navBar, width, left) + "\n" + renderBar(s.navBar, width, right)
	}
	return renderBar(s.navBar, width, left+strings.Repeat(" ", gap)+right)
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return renderBar(a.styles.statusErr, max(1, a.width), msg)
	}
	return renderBar(a.styles.statusBar, max(1, a.width), msg)
}

func (a *App) renderFooter() string {
	scope := string(a.route)
	if a.modal != modalNone {
		scope = scopeEditing
	}
	return renderBar(a.styles.footer, max(1, a.width), a.help.ShortHelpView(a.keys.forScope(scope)))
}

// renderField draws one labelled input, marking it when it has focus.
func (a *App) renderField(m modalState, idx int, label, value string) string {
	if a.modal == m && a.field == idx {
		return a.styles.focused.Render(fmt.Sprintf("> %s: %s_", label, value))
	}
	return fmt.Sprintf("  %s: %s", label, value)
}

func (a *App) renderHome() string {
	s := a.styles
	var b strings.Builder

	b.WriteString(s.title.Render("Counter") + "\n")
	fmt.Fprintf(&b, "Counter: %d\n\n", a.counter.Count)

	b.WriteString(s.title.Render("Slides") + "\n")
	if cur, ok := a.slides.Current(); ok {
		fmt.Fprintf(&b, "%s  (%d/%d)\n%s\n", s.section.Render(cur.Title), a.slides.Index()+1, a.slides.Len(), cur.Text)
	}
	b.WriteString(a.control("p", "Prev", a.slides.CanPrev()) + "  " +
		a.control("n", "Next", a.slides.CanNext()) + "  " +
		a.control("r", "Restart", a.slides.CanRestart()) + "\n\n")

	b.WriteString(s.title.Render("Code Review Feedback") + "\n")
	for i, aspect := range demos.Aspects {
		marker := " "
		if i == a.aspect {
			marker = "▶"
		}
		fmt.Fprintf(&b, "%s %-14s 👍 %d  👎 %d\n", marker, aspect, a.feedback.Up[i], a.feedback.Down[i])
	}
	b.WriteString("\n")

	b.WriteString(s.title.Render("Contact Form") + "\n")
	b.WriteString(a.renderField(modalContact, forms.ContactName, "Name", a.contact.Name) + "\n")
	b.WriteString(a.renderField(modalContact, forms.ContactEmail, "Email", a.contact.Email) + "\n")
	b.WriteString(a.renderField(modalContact, forms.ContactMessage, "Message", a.contact.Message) + "\n")
	if a.contact.Err != nil {
		b.WriteString(s.errText.Render(a.contact.Err.Error()) + "\n")
	}
	if sub := a.contact.Submitted; sub != nil {
		b.WriteString(s.box.Render(fmt.Sprintf("Submitted Information\nName: %s\nEmail: %s\nMessage: %s", sub.Name, sub.Email, sub.Message)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// control renders a button hint, struck through when disabled.
func (a *App) control(k, label string, enabled bool) string {
	text := fmt.Sprintf("[%s] %s", k, label)
	if !enabled {
		return a.styles.disabled.Render(text) + a.styles.muted.Render(" (disabled)")
	}
	return text
}

func (a *App) renderProfileCard() string {
	s := a.styles
	user := a.deps.Auth.User()
	if user == nil {
		return s.box.Render("Welcome!\nPlease sign in to continue\n\n" + a.control("l", "Login as Ratnesh", true))
	}
	return s.box.Render(fmt.Sprintf("Welcome back!\n%s\nRole: %s\n\n%s", user.Name, user.Role, a.control("l", "Logout", true)))
}

func (a *App) renderAbout() string {
	s := a.styles
	var b strings.Builder
	b.WriteString(s.title.Render("About") + "\n")
	b.WriteString(a.renderProfileCard() + "\n\n")

	b.WriteString(s.title.Render("User Profiles") + "\n")
	switch {
	case a.users.loading:
		b.WriteString(a.spinner.View() + " Loading user data...\n")
	case a.users.failure != "":
		b.WriteString(s.errText.Render(a.users.failure) + "\n")
	default:
		for _, u := range a.users.list {
			fmt.Fprintf(&b, "(%s) %-24s @%-16s %-28s %s\n", u.Initial(), u.Name, u.Username, u.Email, u.Website)
		}
	}
	b.WriteString("\n")

	b.WriteString(s.title.Render("Create New Post") + "\n")
	if a.post.created != nil {
		b.WriteString(s.success.Render(fmt.Sprintf("Post created successfully! ID: %d", a.post.created.ID)) + "\n")
	}
	if a.post.failure != "" {
		b.WriteString(s.errText.Render(a.post.failure) + "\n")
	}
	b.WriteString(a.renderField(modalPost, 0, "Title", a.post.title) + "\n")
	b.WriteString(a.renderField(modalPost, 1, "Body", a.post.body) + s.muted.Render("  (optional - leave empty for default content)") + "\n")
	b.WriteString(a.renderField(modalPost, 2, fmt.Sprintf("User (1-%d)", forms.MaxUserID), a.post.userID) + "\n")
	if a.post.err != nil {
		b.WriteString(s.errText.Render(a.post.err.Error()) + "\n")
	}
	if a.post.loading {
		b.WriteString(a.spinner.View() + " " + a.control("enter", "Creating Post...", false))
	} else {
		b.WriteString(s.muted.Render("[e] edit, then [enter] Create Post"))
	}
	return b.String()
}

func (a *App) renderTheme() string {
	s := a.styles
	mode := a.deps.Theme.Get()
	lang := a.deps.Language.Get()
	tr := i18n.For(lang)

	next := store.ThemeDark
	if mode == store.ThemeDark {
		next = store.ThemeLight
	}
	themeCard := s.box.Render(fmt.Sprintf("Current theme: %s\n%s", mode, a.control("t", "Switch to "+string(next)+" mode", true)))
	langCard := s.box.Render(fmt.Sprintf("%s\n%s\n%s", s.section.Render(tr.Welcome), tr.Status, a.control("l", tr.ChangeBtn, true)))
	return s.title.Render("Theme") + "\n" + themeCard + "\n" + langCard
}

func (a *App) renderAuthPage() string {
	s := a.styles
	return s.title.Render("Authentication Login") + "\n" +
		s.muted.Render("Simple login form component") + "\n" +
		a.renderProfileCard()
}

func (a *App) renderBank() string {
	s := a.styles
	t := a.deps.Teller
	var b strings.Builder
	b.WriteString(s.title.Render("Bank Account") + "\n")
	b.WriteString(s.muted.Render("Manage your balance with a reducer") + "\n\n")
	fmt.Fprintf(&b, "Current Balance: %s\n", s.section.Render(bank.FormatAmount(t.Balance())))
	if last, ok := t.Last(); ok {
		fmt.Fprintf(&b, "Last action: %s\n", last)
	}
	b.WriteString("\n" + a.renderField(modalAmount, 0, "Amount", a.amount) + "\n")
	if a.bankErr != nil {
		b.WriteString(s.errText.Render(a.bankErr.Error()) + "\n")
	}
	_, amountErr := bank.ParseAmount(a.amount)
	b.WriteString(a.control("d", "Deposit", amountErr == nil) + "  " +
		a.control("w", "Withdraw", a.withdrawEnabled()) + "  " +
		a.control("r", "Reset", true) + "\n\n")
	b.WriteString(s.muted.Render("Deposit: Add money to your balance\nWithdraw: Remove money (prevents negative balance)\nReset: Clear balance to $0.00"))
	return b.String()
}

func (a *App) renderCallback() string {
	s := a.styles
	d := a.callback
	active := "Disabled"
	if d.Active {
		active = "Enabled"
	}
	var b strings.Builder
	b.WriteString(s.title.Render("useCallback Demo") + "\n")
	fmt.Fprintf(&b, "Count: %d   Active: %s\n\n", d.Count, active)
	fmt.Fprintf(&b, "Without a stable handler: %s [i]  renders: %d\n", d.IncrementButton.View(), d.IncrementButton.Renders())
	fmt.Fprintf(&b, "With a stable handler:    %s [t]  renders: %d\n", d.ToggleButton.View(), d.ToggleButton.Renders())
	b.WriteString(s.muted.Render(fmt.Sprintf("parent renders: %d", d.ParentRenders())))
	return b.String()
}

func (a *App) renderGoto() string {
	return a.styles.box.Render(a.styles.section.Render("Go to path") + "\n" + a.renderField(modalGoto, 0, "Path", a.inputBuffer))
}
