package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harborbank/teller/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run diagnostics on the client setup",
	Long: `Run diagnostics on the client setup.

Checks include:
  - teller directory and config file
  - stored session state
  - bank backend reachability

Examples:
  teller doctor
  teller doctor --json`,
	RunE: runDoctor,
}

var doctorJSON bool

// DoctorCheck represents a single health check result
type DoctorCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport represents the complete health check report
type DoctorReport struct {
	Checks  []DoctorCheck `json:"checks"`
	Healthy bool          `json:"healthy"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}

	report := &DoctorReport{Healthy: true}
	add := func(check DoctorCheck) {
		if check.Status == "error" {
			report.Healthy = false
		}
		report.Checks = append(report.Checks, check)
	}

	add(checkDirectory(e.dir))
	add(checkConfigFile(e.dir))
	add(checkSession(e))
	add(checkBackend(e.cfg.APIBaseURL))

	if doctorJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, check := range report.Checks {
		marker := "ok "
		switch check.Status {
		case "warning":
			marker = "?? "
		case "error":
			marker = "!! "
		}
		fmt.Printf("%s %-10s %s\n", marker, check.Name, check.Message)
	}
	if !report.Healthy {
		return fmt.Errorf("some checks failed")
	}
	return nil
}

func checkDirectory(dir string) DoctorCheck {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return DoctorCheck{Name: "directory", Status: "error", Message: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}
	return DoctorCheck{Name: "directory", Status: "ok", Message: dir}
}

func checkConfigFile(dir string) DoctorCheck {
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DoctorCheck{Name: "config", Status: "warning", Message: "no config file, using defaults"}
	}
	if _, err := config.Load(dir); err != nil {
		return DoctorCheck{Name: "config", Status: "error", Message: err.Error()}
	}
	return DoctorCheck{Name: "config", Status: "ok", Message: path}
}

func checkSession(e *env) DoctorCheck {
	rec := e.sessions.Session()
	if rec.Absent() {
		return DoctorCheck{Name: "session", Status: "warning", Message: "not signed in"}
	}
	return DoctorCheck{Name: "session", Status: "ok", Message: fmt.Sprintf("signed in as %s (%s)", rec.User.Email, rec.User.Role)}
}

func checkBackend(baseURL string) DoctorCheck {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL)
	if err != nil {
		return DoctorCheck{Name: "backend", Status: "error", Message: fmt.Sprintf("%s unreachable: %v", baseURL, err)}
	}
	defer func() { _ = resp.Body.Close() }()
	return DoctorCheck{Name: "backend", Status: "ok", Message: baseURL}
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output report as JSON")
	rootCmd.AddCommand(doctorCmd)
}
