// Package tui provides the terminal user interface for bubblechart.
package tui

import (
	"time"

	"github.com/dbmrq/bubblechart/internal/dataset"
)

// DatasetLoadedMsg is sent when the CSV has been parsed.
type DatasetLoadedMsg struct {
	Dataset *dataset.Dataset
	Report  *dataset.Report
}

// DatasetFailedMsg is sent when the CSV could not be loaded.
type DatasetFailedMsg struct {
	Err error
}

// FrameMsg drives transitions while any bubble is animating.
type FrameMsg struct {
	Time time.Time
}

// PlayTickMsg advances autoplay by one year. Ticks from an earlier run of
// the player carry a stale generation and are dropped.
type PlayTickMsg struct {
	Time       time.Time
	Generation int
}

// QuitMsg asks the program to exit.
type QuitMsg struct{}
