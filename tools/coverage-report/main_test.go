package main

import (
	"strings"
	"testing"
)

func TestGenerateMarkdownReport(t *testing.T) {
	report := generateMarkdownReport()

	tests := []struct {
		name     string
		contains string
	}{
		{"has title", "# Code Coverage Report"},
		{"has generation info", "Generated:"},
		{"has target section", "Target:"},
		{"has tree model", "Tree model"},
		{"has matching", "Matching"},
		{"has refactor", "Refactor"},
		{"has store", "Store"},
		{"has cli", "CLI"},
		{"has coverage commands", "Coverage Commands"},
		{"has make test", "make test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(report, tt.contains) {
				t.Errorf("report missing required content: %s", tt.contains)
			}
		})
	}
}

func TestReportContent(t *testing.T) {
	report := generateMarkdownReport()

	if len(report) < 500 {
		t.Error("report seems too short")
	}

	if !strings.Contains(report, "javarefactor") {
		t.Error("report should mention project name")
	}
}

func TestReportFormatValidation(t *testing.T) {
	report := generateMarkdownReport()

	if strings.Count(report, "#") < 3 {
		t.Error("report should have multiple sections")
	}

	if strings.Count(report, "|") < 10 {
		t.Error("report should have table structure")
	}
}

func TestIntegrationWithCoverageCheck(t *testing.T) {
	report := generateMarkdownReport()

	if report == "" {
		t.Error("report generation failed")
	}
}
