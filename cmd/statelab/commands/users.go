package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/statelab/internal/placeholder"
)

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Print the user directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := newClient().ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch user data: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), usersTable(users))
			return nil
		},
	}
}

func usersTable(users []placeholder.User) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "USERNAME", "EMAIL", "PHONE", "WEBSITE", "COMPANY")
	for _, u := range users {
		t.Row(strconv.Itoa(u.ID), u.Name, "@"+u.Username, u.Email, u.Phone, u.Website, u.Company.Name)
	}
	return t.String()
}
