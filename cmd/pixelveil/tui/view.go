// Copyright 2026 The Pixelveil Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("pixelveil"))
	b.WriteString("\n\n")

	switch m.step {
	case stepMode:
		b.WriteString(m.styles.normal.Render("What do you want to do?"))
		b.WriteString("\n\n")
		b.WriteString(m.renderChoice("Embed a payload into an image", m.mode == modeEmbed))
		b.WriteString("\n")
		b.WriteString(m.renderChoice("Extract a payload from an image", m.mode == modeExtract))
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render("up/down: choose • enter: continue • q: quit"))

	case stepCarrier:
		b.WriteString(m.styles.normal.Render("Pick the carrier image"))
		b.WriteString("\n\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(m.styles.faint.Render("enter: select • esc: back"))

	case stepPayload:
		b.WriteString(m.styles.normal.Render("Pick the payload file to hide"))
		b.WriteString("\n\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n")
		b.WriteString(m.styles.faint.Render("enter: select • esc: back"))

	case stepOutput:
		b.WriteString(m.styles.normal.Render("Where should the result be written?"))
		b.WriteString("\n\n")
		b.WriteString(m.output.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render("enter: continue • esc: back"))

	case stepPassphrase:
		b.WriteString(m.styles.normal.Render("Passphrase (enables AES-256-GCM, leave blank to skip)"))
		b.WriteString("\n\n")
		b.WriteString(m.passphrase.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render("enter: continue • esc: back"))

	case stepCompress:
		label := "Compress the payload?"
		if m.mode == modeExtract {
			label = "Was the payload compressed when embedded?"
		}
		b.WriteString(m.styles.normal.Render(label))
		b.WriteString("\n\n")
		b.WriteString(m.renderChoice("yes", m.compress))
		b.WriteString("  ")
		b.WriteString(m.renderChoice("no", !m.compress))
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render("space: toggle • enter: run • esc: back"))

	case stepRunning:
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.normal.Render(" working"))
		b.WriteString("\n\n")
		for _, phase := range m.phases {
			b.WriteString(m.styles.faint.Render("  " + phase))
			b.WriteString("\n")
		}

	case stepDone:
		for _, phase := range m.phases {
			b.WriteString(m.styles.faint.Render("  " + phase))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(m.styles.failure.Render("error: " + m.err.Error()))
		} else {
			b.WriteString(m.styles.success.Render(m.summary))
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.faint.Render("enter: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// renderChoice renders a selectable option with a cursor marker.
func (m Model) renderChoice(label string, selected bool) string {
	if selected {
		return m.styles.selected.Render("> " + label)
	}
	return m.styles.normal.Render("  " + label)
}
