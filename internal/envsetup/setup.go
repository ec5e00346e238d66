// envsetup provides a lightweight .env configuration wizard.
// It runs on first web server startup when no .env file exists,
// collecting the dictionary location, database and listen port.
package envsetup

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type step int

const (
	stepWelcome step = iota
	stepDictionary
	stepDatabase
	stepPort
	stepAdminKey
	stepConfirm
)

const defaultPort = 8080

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	step        step
	envPath     string
	dictPath    string
	databaseURL string
	port        int
	adminKey    string
	textInput   textinput.Model
	saved       bool
	err         error
	width       int
	height      int
}

// New returns a wizard that writes its result to envPath.
func New(envPath string) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	return model{
		step:      stepWelcome,
		envPath:   envPath,
		port:      defaultPort,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	if m.step == stepWelcome {
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.textInput.Value())

	switch m.step {
	case stepWelcome:
		m.step = stepDictionary

	case stepDictionary:
		if value == "" {
			m.err = fmt.Errorf("dictionary path is required")
			return m, nil
		}
		if _, err := os.Stat(value); err != nil {
			m.err = fmt.Errorf("cannot read %s: %w", value, err)
			return m, nil
		}
		m.dictPath = value
		m.step = stepDatabase

	case stepDatabase:
		m.databaseURL = value
		m.step = stepPort

	case stepPort:
		if value != "" {
			port, err := strconv.Atoi(value)
			if err != nil || port < 1 || port > 65535 {
				m.err = fmt.Errorf("port must be a number between 1 and 65535")
				return m, nil
			}
			m.port = port
		}
		m.step = stepAdminKey
		m.textInput.EchoMode = textinput.EchoPassword

	case stepAdminKey:
		m.adminKey = value
		m.step = stepConfirm
		m.textInput.EchoMode = textinput.EchoNormal

	case stepConfirm:
		choice := strings.ToLower(value)
		if choice == "y" || choice == "yes" || choice == "" {
			if err := m.writeEnvFile(); err != nil {
				m.err = err
				return m, nil
			}
			m.saved = true
			return m, tea.Quit
		} else if choice == "n" || choice == "no" {
			m = New(m.envPath)
		}
	}

	m.textInput.SetValue("")
	return m, nil
}

func (m model) envContent() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DICT=%s\n", m.dictPath)
	if m.databaseURL != "" {
		fmt.Fprintf(&b, "DATABASE_URL=%s\n", m.databaseURL)
	}
	fmt.Fprintf(&b, "PORT=%d\n", m.port)
	if m.adminKey != "" {
		fmt.Fprintf(&b, "ADMIN_KEY=%s\n", m.adminKey)
	}
	return b.String()
}

func (m model) writeEnvFile() error {
	return os.WriteFile(m.envPath, []byte(m.envContent()), 0600)
}

func (m model) View() string {
	var s strings.Builder

	switch m.step {
	case stepWelcome:
		s.WriteString(titleStyle.Render("kanafy - Env Setup"))
		s.WriteString("\n\n")
		s.WriteString("This wizard will help you configure the web server.\n")
		s.WriteString("You'll need:\n\n")
		s.WriteString("  - A pronunciation dictionary (one WORD PH O NE MES entry per line)\n")
		s.WriteString("  - Optionally, a SQLite path or PostgreSQL URL for the miss log\n")
		s.WriteString("\n")
		s.WriteString(dimStyle.Render("Press Enter to continue, Ctrl+C to exit"))

	case stepDictionary:
		s.WriteString(titleStyle.Render("Step 1: Pronunciation Dictionary"))
		s.WriteString("\n\n")
		s.WriteString("The CMU Pronouncing Dictionary works as-is:\n\n")
		s.WriteString("  " + linkStyle.Render("https://github.com/cmusphinx/cmudict") + "\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Path to the dictionary file:"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())

	case stepDatabase:
		s.WriteString(titleStyle.Render("Step 2: Database"))
		s.WriteString("\n\n")
		s.WriteString("Words missing from the dictionary are logged here.\n")
		s.WriteString("Use a file path for SQLite or a postgres:// URL.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Database (blank for none):"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())

	case stepPort:
		s.WriteString(titleStyle.Render("Step 3: Port"))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("HTTP port (blank for %d):", defaultPort)))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())

	case stepAdminKey:
		s.WriteString(titleStyle.Render("Step 4: Admin Key"))
		s.WriteString("\n\n")
		s.WriteString("Required as X-API-Key to read the miss log.\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Admin key (blank to leave the miss log open):"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())

	case stepConfirm:
		database := m.databaseURL
		if database == "" {
			database = "(none)"
		}
		s.WriteString(titleStyle.Render("Configuration Complete"))
		s.WriteString("\n\n")
		s.WriteString("Your configuration:\n\n")
		s.WriteString("  Dictionary: " + successStyle.Render(m.dictPath) + "\n")
		s.WriteString("  Database:   " + successStyle.Render(database) + "\n")
		s.WriteString("  Port:       " + successStyle.Render(strconv.Itoa(m.port)) + "\n")
		s.WriteString("  Admin key:  " + successStyle.Render(maskToken(m.adminKey)) + "\n")
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Save this configuration? [Y/n]:"))
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n")
	return s.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}

// Run starts the setup wizard and returns true if a .env file was written.
func Run(envPath string) (bool, error) {
	p := tea.NewProgram(New(envPath))
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(model)
	return m.saved, nil
}

// NeedsSetup checks if the env file exists.
func NeedsSetup(envPath string) bool {
	_, err := os.Stat(envPath)
	return os.IsNotExist(err)
}
