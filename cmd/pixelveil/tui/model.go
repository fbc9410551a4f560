// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelveil/pixelveil/lib/carrier"
	"github.com/pixelveil/pixelveil/lib/pipeline"
)

// mode selects which pipeline operation the wizard drives.
type mode int

const (
	modeEmbed mode = iota
	modeExtract
)

// step identifies the wizard screen. Steps advance strictly forward;
// escape returns to the previous screen.
type step int

const (
	stepMode       step = iota // choose embed or extract
	stepCarrier                // pick the carrier image
	stepPayload                // pick the payload file (embed only)
	stepOutput                 // type the output path
	stepPassphrase             // type the passphrase (blank = none)
	stepCompress               // toggle compression
	stepRunning                // pipeline in flight
	stepDone                   // result or error
)

// progressMsg carries one pipeline phase notification into the
// bubbletea message loop.
type progressMsg string

// finishedMsg carries the pipeline result.
type finishedMsg struct {
	summary string
	err     error
}

// channelProgress adapts the events channel to pipeline.Progress.
// Sends are synchronous with pipeline phases; the model drains the
// channel between frames.
type channelProgress struct {
	events chan tea.Msg
}

func (p channelProgress) Update(message string) { p.events <- progressMsg(message) }
func (p channelProgress) Finish(message string) { p.events <- progressMsg(message) }

// Model is the interactive wizard. It collects the same inputs the
// embed/extract CLI flags express, then runs the pipeline in a
// goroutine with progress routed through the message loop.
type Model struct {
	theme  Theme
	styles styles

	step step
	mode mode

	picker     filepicker.Model
	output     textinput.Model
	passphrase textinput.Model
	spin       spinner.Model

	compress    bool
	carrierPath string
	payloadPath string

	phases  []string
	summary string
	err     error

	events chan tea.Msg
	width  int
	height int
}

// NewModel builds the wizard in its initial state.
func NewModel() Model {
	theme := DefaultTheme

	picker := filepicker.New()
	picker.CurrentDirectory, _ = os.Getwd()

	output := textinput.New()
	output.Placeholder = "output path"
	output.CharLimit = 512

	passphrase := textinput.New()
	passphrase.Placeholder = "passphrase (leave blank for none)"
	passphrase.EchoMode = textinput.EchoPassword
	passphrase.CharLimit = 32

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		theme:      theme,
		styles:     newStyles(theme),
		step:       stepMode,
		picker:     picker,
		output:     output,
		passphrase: passphrase,
		spin:       spin,
		events:     make(chan tea.Msg, 8),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// waitEvent delivers the next pipeline event to Update. Re-issued
// after every event until finishedMsg arrives.
func waitEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-events }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.Height = msg.Height - 8
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case progressMsg:
		m.phases = append(m.phases, string(msg))
		return m, waitEvent(m.events)

	case finishedMsg:
		m.step = stepDone
		m.summary = msg.summary
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateComponent(msg)
}

// updateKey routes key presses to the active step.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.step {
	case stepMode:
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "up", "down", "k", "j", "tab":
			if m.mode == modeEmbed {
				m.mode = modeExtract
			} else {
				m.mode = modeEmbed
			}
			return m, nil
		case "enter":
			m.step = stepCarrier
			return m, m.picker.Init()
		}
		return m, nil

	case stepCarrier, stepPayload:
		if key == "esc" {
			m.step--
			return m, nil
		}
		return m.updateComponent(msg)

	case stepOutput:
		switch key {
		case "esc":
			m.step = stepCarrier
			if m.mode == modeEmbed {
				m.step = stepPayload
			}
			return m, m.picker.Init()
		case "enter":
			if strings.TrimSpace(m.output.Value()) == "" {
				return m, nil
			}
			m.step = stepPassphrase
			m.output.Blur()
			return m, m.passphrase.Focus()
		}
		return m.updateComponent(msg)

	case stepPassphrase:
		switch key {
		case "esc":
			m.step = stepOutput
			m.passphrase.Blur()
			return m, m.output.Focus()
		case "enter":
			m.passphrase.Blur()
			m.step = stepCompress
			return m, nil
		}
		return m.updateComponent(msg)

	case stepCompress:
		switch key {
		case "esc":
			m.step = stepPassphrase
			return m, m.passphrase.Focus()
		case "left", "right", "h", "l", "tab", " ":
			m.compress = !m.compress
			return m, nil
		case "enter":
			m.step = stepRunning
			return m, tea.Batch(m.spin.Tick, m.startPipeline(), waitEvent(m.events))
		}
		return m, nil

	case stepDone:
		switch key {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// updateComponent forwards a message to whichever bubbles component
// the active step owns.
func (m Model) updateComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.step {
	case stepCarrier, stepPayload:
		m.picker, cmd = m.picker.Update(msg)
		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			return m.fileChosen(path)
		}
		return m, cmd

	case stepOutput:
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case stepPassphrase:
		m.passphrase, cmd = m.passphrase.Update(msg)
		return m, cmd
	}

	return m, nil
}

// fileChosen records the picked file and advances the wizard.
func (m Model) fileChosen(path string) (tea.Model, tea.Cmd) {
	if m.step == stepCarrier {
		m.carrierPath = path
		if m.mode == modeEmbed {
			m.step = stepPayload
			return m, m.picker.Init()
		}
		m.step = stepOutput
		return m, m.output.Focus()
	}

	m.payloadPath = path
	m.step = stepOutput
	return m, m.output.Focus()
}

// startPipeline runs the selected operation in a goroutine. Progress
// updates and the final result arrive through the events channel.
func (m Model) startPipeline() tea.Cmd {
	operation := m.mode
	carrierPath := m.carrierPath
	payloadPath := m.payloadPath
	outputPath := strings.TrimSpace(m.output.Value())
	opts := pipeline.Options{
		Passphrase: m.passphrase.Value(),
		Compress:   m.compress,
	}
	events := m.events

	return func() tea.Msg {
		go func() {
			progress := channelProgress{events: events}
			var summary string
			var err error
			if operation == modeEmbed {
				summary, err = runEmbed(carrierPath, payloadPath, outputPath, opts, progress)
			} else {
				summary, err = runExtract(carrierPath, outputPath, opts, progress)
			}
			events <- finishedMsg{summary: summary, err: err}
		}()
		return nil
	}
}

// runEmbed mirrors the CLI embed flow: load, embed, save, verify.
func runEmbed(carrierPath, payloadPath, outputPath string, opts pipeline.Options, progress pipeline.Progress) (string, error) {
	progress.Update("Loading carrier image")
	image, err := carrier.Load(carrierPath)
	if err != nil {
		return "", err
	}

	progress.Update("Reading payload file")
	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		return "", fmt.Errorf("reading payload file: %w", err)
	}

	if err := pipeline.Embed(payload, image, opts, progress); err != nil {
		return "", err
	}

	outputPath = carrier.EnsureLosslessPath(outputPath)
	progress.Update("Saving embedded image")
	if err := carrier.Save(image, outputPath); err != nil {
		return "", err
	}

	reloaded, err := carrier.Load(outputPath)
	if err != nil {
		return "", fmt.Errorf("verifying output image: %w", err)
	}
	if reloaded.Digest() != image.Digest() {
		return "", fmt.Errorf("output image %s did not round-trip losslessly", outputPath)
	}

	return "Embedding completed => " + outputPath, nil
}

// runExtract mirrors the CLI extract flow.
func runExtract(carrierPath, outputPath string, opts pipeline.Options, progress pipeline.Progress) (string, error) {
	progress.Update("Loading carrier image")
	image, err := carrier.Load(carrierPath)
	if err != nil {
		return "", err
	}

	payload, err := pipeline.Extract(image, opts, progress)
	if err != nil {
		return "", err
	}

	progress.Update("Saving recovered payload")
	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return "", fmt.Errorf("writing recovered payload: %w", err)
	}

	return "Extraction completed => " + outputPath, nil
}
