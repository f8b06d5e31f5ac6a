package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bsviz/internal/search"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Array       []int         `json:"array"`
	Target      int           `json:"target"`
	Interval    time.Duration `json:"interval"`
	Outcome     string        `json:"outcome"`
	Index       int           `json:"index"`
	Comparisons int           `json:"comparisons"`
	WorstCase   int           `json:"worst_case"`
}

// Outcome names how a recorded search ended and the index it ended on, or
// -1 when the target was not found.
func Outcome(steps []search.Step) (string, int) {
	if len(steps) == 0 {
		return search.StatusIdle.String(), -1
	}
	last := steps[len(steps)-1]
	if last.Transition == search.TransitionFound {
		return search.StatusFound.String(), last.Mid
	}
	return search.StatusExhausted.String(), -1
}

// Save records a finished search and returns its run id.
func (s *Store) Save(array []int, target int, interval time.Duration, steps []search.Step) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("search_%d", ts.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	outcome, index := Outcome(steps)
	meta := RunMetadata{
		ID:          runID,
		Timestamp:   ts,
		Array:       array,
		Target:      target,
		Interval:    interval,
		Outcome:     outcome,
		Index:       index,
		Comparisons: len(steps),
		WorstCase:   search.MaxComparisons(len(array)),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, stepsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteSteps(csvFile, steps); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteSteps writes steps as CSV with a header row.
func WriteSteps(w io.Writer, steps []search.Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "at", "low", "mid", "high", "value", "transition"}); err != nil {
		return err
	}
	for i, st := range steps {
		row := []string{
			strconv.Itoa(i + 1),
			st.At.Format(time.RFC3339Nano),
			strconv.Itoa(st.Low),
			strconv.Itoa(st.Mid),
			strconv.Itoa(st.High),
			strconv.Itoa(st.Value),
			st.Transition.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns all saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]search.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, stepsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()
	return ReadSteps(file)
}

// ReadSteps parses CSV written by WriteSteps. Malformed rows are skipped.
func ReadSteps(r io.Reader) ([]search.Step, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []search.Step{}, nil
	}

	steps := make([]search.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 7 {
			continue
		}
		at, err := time.Parse(time.RFC3339Nano, record[1])
		if err != nil {
			continue
		}
		nums := make([]int, 4)
		ok := true
		for i := range nums {
			nums[i], err = strconv.Atoi(record[2+i])
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		steps = append(steps, search.Step{
			At:         at,
			Low:        nums[0],
			Mid:        nums[1],
			High:       nums[2],
			Value:      nums[3],
			Transition: parseTransition(record[6]),
		})
	}
	return steps, nil
}

func parseTransition(s string) search.Transition {
	for tr := search.TransitionNone; tr <= search.TransitionFound; tr++ {
		if tr.String() == s {
			return tr
		}
	}
	return search.TransitionNone
}

// Export is the JSON document printed for a single run.
type Export struct {
	RunMetadata
	Steps []ExportStep `json:"steps"`
}

type ExportStep struct {
	Low        int    `json:"low"`
	Mid        int    `json:"mid"`
	High       int    `json:"high"`
	Value      int    `json:"value"`
	Transition string `json:"transition"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, steps []search.Step) error {
	data := Export{RunMetadata: *meta, Steps: make([]ExportStep, len(steps))}
	for i, st := range steps {
		data.Steps[i] = ExportStep{
			Low:        st.Low,
			Mid:        st.Mid,
			High:       st.High,
			Value:      st.Value,
			Transition: st.Transition.String(),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
