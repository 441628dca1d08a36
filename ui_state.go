package main

import "github.com/charmbracelet/bubbles/textinput"

type mode int

const (
	modeView mode = iota
	modeCommand
)

type panel int

const (
	panelMarketData panel = iota
	panelLatestNews
)

type uiState struct {
	mode         mode
	command      CommandInput
	input        textinput.Model
	activePanel  panel
	marketScroll int // index into filteredIndices of the first visible quote
	newsScroll   int // index of the first visible headline
	noticeMsg    string
	noticeType   string
	noticeSeq    int
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 156
	ti.Width = 40
	return ti
}
