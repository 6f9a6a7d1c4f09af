package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hamzaqureshi/lipi/internal/anthropic"
	"github.com/hamzaqureshi/lipi/internal/detect"
	"github.com/hamzaqureshi/lipi/internal/google"
	"github.com/hamzaqureshi/lipi/internal/langcode"
	"github.com/hamzaqureshi/lipi/internal/llm"
	"github.com/hamzaqureshi/lipi/internal/logger"
	"github.com/hamzaqureshi/lipi/internal/pipeline"
	"github.com/hamzaqureshi/lipi/internal/romanize"
	"github.com/hamzaqureshi/lipi/internal/translate"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type step int

const (
	stepText step = iota
	stepTarget
	stepTranslating
	stepResult
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type resultMsg struct {
	result pipeline.Result
}

type model struct {
	step   step
	input  textinput.Model
	spin   spinner.Model
	pipe   *pipeline.Pipeline
	text   string
	target string
	result pipeline.Result
	err    error
}

func newModel(pipe *pipeline.Pipeline) model {
	ti := textinput.New()
	ti.Placeholder = "Enter text"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		step:  stepText,
		input: ti,
		spin:  sp,
		pipe:  pipe,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case resultMsg:
		m.result = msg.result
		m.step = stepResult
		m.input.SetValue("")
		m.input.Placeholder = "yes/no"
		return m, nil

	case spinner.TickMsg:
		if m.step == stepTranslating {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil

	switch m.step {
	case stepText:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.err = fmt.Errorf("no text entered, try again")
			return m, nil
		}
		m.text = text
		m.input.SetValue("")
		m.input.Placeholder = "e.g. ur or Russian (empty = en)"
		m.step = stepTarget

	case stepTarget:
		m.target = strings.TrimSpace(m.input.Value())
		if m.target == "" {
			m.target = langcode.DefaultCode
		}
		m.step = stepTranslating
		return m, tea.Batch(m.spin.Tick, m.translateCmd())

	case stepResult:
		answer := strings.ToLower(strings.TrimSpace(m.input.Value()))
		if answer == "yes" || answer == "y" {
			m.text = ""
			m.target = ""
			m.input.SetValue("")
			m.input.Placeholder = "Enter text"
			m.step = stepText
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m model) translateCmd() tea.Cmd {
	pipe, text, target := m.pipe, m.text, m.target
	return func() tea.Msg {
		return resultMsg{result: pipe.Run(context.Background(), text, target)}
	}
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Multilingual translator"))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Supports: " + strings.Join(langcode.Supported(), ", ")))
	s.WriteString("\n\n")

	switch m.step {
	case stepText:
		s.WriteString(labelStyle.Render("Enter text:"))
		s.WriteString("\n" + m.input.View())

	case stepTarget:
		s.WriteString(labelStyle.Render("Translate into which language (name or code)?"))
		s.WriteString("\n" + m.input.View())

	case stepTranslating:
		s.WriteString(m.spin.View() + " translating…")

	case stepResult:
		s.WriteString(labelStyle.Render("Detected language (heuristic): "))
		s.WriteString(valueStyle.Render(fmt.Sprintf("%s (%s)",
			m.result.SourceLang, langcode.DisplayName(m.result.SourceLang))))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("Translated (%s): ", m.result.TargetLang)))
		s.WriteString(valueStyle.Render(m.result.Translated))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Romanized: "))
		s.WriteString(valueStyle.Render(m.result.Romanized))
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("Translate more? (yes/no):"))
		s.WriteString("\n" + m.input.View())
	}

	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}

	s.WriteString("\n")
	return s.String()
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	flags := ff.NewFlagSet("lipi")

	var (
		detector        = flags.StringEnumLong("detector", "language detection provider", "lingua", "whatlang")
		translator      = flags.StringEnumLong("translator", "translation backend", "google", "llm")
		llmProvider     = flags.StringEnumLong("llm-provider", "LLM provider for the llm translation backend", "anthropic", "google")
		llmModel        = flags.StringLong("llm-model", "", "LLM model name")
		anthropicAPIKey = flags.StringLong("anthropic-api-key", "", "Anthropic API key")
		googleAPIKey    = flags.StringLong("google-api-key", "", "Google API key")
	)

	if err := ff.Parse(flags, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(flags))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	classifier, err := detect.NewClassifier(*detector)
	if err != nil {
		return err
	}

	var llmClient llm.Client
	if *translator == "llm" {
		switch *llmProvider {
		case "anthropic":
			if *anthropicAPIKey == "" {
				return fmt.Errorf("anthropic-api-key is required when using the anthropic provider")
			}
			llmClient = anthropic.NewClient(*anthropicAPIKey, anthropic.Model(*llmModel))
		case "google":
			if *googleAPIKey == "" {
				return fmt.Errorf("google-api-key is required when using the google provider")
			}
			llmClient, err = google.NewClient(context.Background(), *googleAPIKey, google.Model(*llmModel))
			if err != nil {
				return fmt.Errorf("creating Google client: %w", err)
			}
		}
	}

	trans, err := translate.New(translate.Config{
		Backend: translate.Backend(*translator),
		LLM:     llmClient,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	caps := romanize.Probe(log)
	pipe := pipeline.New(detect.NewSafeDetector(classifier), trans, romanize.New(caps), log)

	p := tea.NewProgram(newModel(pipe))
	_, err = p.Run()
	return err
}
