// Package hyp3 decodes HyP3 job listings into job batches.
package hyp3

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listing struct {
	Jobs []jobRecord `json:"jobs"`
}

type jobRecord struct {
	JobID      string `json:"job_id"`
	Name       string `json:"name"`
	JobType    string `json:"job_type"`
	StatusCode string `json:"status_code"`
	Parameters struct {
		Granules []string `json:"granules"`
	} `json:"job_parameters"`
}

// DecodeJobs reads a {"jobs": [...]} listing. Every job must carry a valid
// UUID and at least one granule.
func DecodeJobs(r io.Reader) (jobs.Batch, error) {
	var l listing
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("decode job listing: %w", err)
	}
	out := make(jobs.Batch, 0, len(l.Jobs))
	for i, rec := range l.Jobs {
		id, err := uuid.Parse(rec.JobID)
		if err != nil {
			return nil, fmt.Errorf("job %d: invalid id %q: %w", i, rec.JobID, err)
		}
		if len(rec.Parameters.Granules) == 0 {
			return nil, fmt.Errorf("job %s: no granules", id)
		}
		out = append(out, &jobs.Job{
			ID:       id.String(),
			Name:     strings.TrimSpace(rec.Name),
			Type:     rec.JobType,
			Status:   rec.StatusCode,
			Granules: append([]string(nil), rec.Parameters.Granules...),
		})
	}
	return out, nil
}

// Succeeded keeps jobs whose status is SUCCEEDED.
func Succeeded(b jobs.Batch) (jobs.Batch, error) {
	out := make(jobs.Batch, 0, len(b))
	for _, j := range b {
		if j.Status == "SUCCEEDED" {
			out = append(out, j)
		}
	}
	return out, nil
}

// RTCProjects returns the project names of RTC_GAMMA jobs.
func RTCProjects(b jobs.Batch) []string {
	rtc := make(jobs.Batch, 0, len(b))
	for _, j := range b {
		if j.Type == "RTC_GAMMA" {
			rtc = append(rtc, j)
		}
	}
	return jobs.ProjectNames(rtc)
}

// LoadFile decodes a job listing saved to disk.
func LoadFile(path string) (jobs.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open job listing: %w", err)
	}
	defer f.Close()
	return DecodeJobs(f)
}
