package logging

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/hgupta2363/metabase/mem"
)

type timeLog struct {
	Time       time.Time
	Interval   time.Duration
	Cumulative time.Duration
	Operation  string
}

var timing []timeLog

func shouldProfile() bool {
	return strings.ToUpper(os.Getenv(EnvProfile)) == "TRUE"
}

// LogTime records a profiling checkpoint. No-op unless MB_PROFILE is set.
func LogTime(operation string) {
	if !shouldProfile() {
		return
	}
	var elapsed time.Duration
	var cumulative time.Duration
	if len(timing) > 0 {
		cumulative = time.Since(timing[0].Time)
		elapsed = time.Since(timing[len(timing)-1].Time)
	}
	timing = append(timing, timeLog{time.Now(), elapsed, cumulative, operation})
}

func ClearProfileData() {
	timing = []timeLog{}
}

// DisplayProfileData renders the recorded checkpoints as a table through
// the logger, collapsing intervals below minTime, then clears them.
func DisplayProfileData(minTime time.Duration) {
	if !shouldProfile() {
		return
	}

	minString := fmt.Sprintf("< %s", minTime.String())
	var data [][]string
	for _, logEntry := range timing {
		interval := logEntry.Interval.String()
		if logEntry.Interval < minTime {
			interval = minString
		}
		cumulative := logEntry.Cumulative.String()
		if logEntry.Cumulative < minTime {
			cumulative = minString
		}
		data = append(data, []string{logEntry.Operation, logEntry.Time.Format(time.StampMilli), interval, cumulative})
	}

	var b bytes.Buffer
	writer := bufio.NewWriter(&b)
	displayTable(writer, data)
	_ = writer.Flush()

	// log row by row so every line carries a level prefix
	for _, line := range strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n") {
		log.Printf("[INFO] %s\n", line)
	}
	log.Printf("[INFO] process memory %.1fMb\n", mem.ProcessMemoryMb())

	ClearProfileData()
}

func displayTable(out io.Writer, data [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Operation", "Time", "Elapsed", "Cumulative"})
	table.SetBorder(true)
	table.SetColWidth(50)
	table.AppendBulk(data)
	table.SetAutoWrapText(false)
	table.Render()
}
