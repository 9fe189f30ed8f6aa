package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath     string
	APIBaseURL     string
	APIReachable   bool
	APITimeout     string
	DefaultDiv     string
	DefaultAccount string
	DefaultPeriod  string
	LogLevel       string
	LogFile        string
}

func RenderSystemInfo(data SystemInfoItem) error {
	apiStatus := pterm.Green("Reachable")
	if !data.APIReachable {
		apiStatus = pterm.Red("Unreachable")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "stderr"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"API Base URL", data.APIBaseURL},
		{"API Status", apiStatus},
		{"API Timeout", data.APITimeout},
		{"Default Division", data.DefaultDiv},
		{"Default Account", data.DefaultAccount},
		{"Default Period", data.DefaultPeriod},
		{"Log Level", data.LogLevel},
		{"Log Output", logFile},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
