package models

import "strings"

// Role determines which views and operations a user is offered
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
	RoleStore   Role = "STORE"
)

// NavItem is a role-scoped navigation entry
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ParseRole accepts role names case-insensitively ("doctor", "DOCTOR")
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RolePatient, RoleDoctor, RoleAdmin, RoleStore:
		return r, true
	}
	return "", false
}

var navigation = map[Role][]NavItem{
	RolePatient: {
		{ID: "dashboard", Label: "Find Care"},
		{ID: "tokens", Label: "My Tokens"},
		{ID: "records", Label: "Medical Records"},
		{ID: "pharmacy", Label: "Pharmacy"},
	},
	RoleDoctor: {
		{ID: "dashboard", Label: "Overview"},
		{ID: "patients", Label: "Patient Queue"},
		{ID: "records", Label: "Records & AI"},
	},
	RoleAdmin: {
		{ID: "dashboard", Label: "Analytics"},
		{ID: "hospitals", Label: "Hospitals"},
		{ID: "stores", Label: "Medical Stores"},
	},
	RoleStore: {
		{ID: "dashboard", Label: "Orders"},
		{ID: "inventory", Label: "Inventory"},
	},
}

// Navigation returns the sidebar entries offered to role
func Navigation(role Role) []NavItem {
	return append([]NavItem(nil), navigation[role]...)
}
