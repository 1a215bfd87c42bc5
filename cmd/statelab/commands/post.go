package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/statelab/internal/forms"
)

func postCmd() *cobra.Command {
	var (
		title  string
		body   string
		userID int
	)
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create a post on the demo API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := forms.BuildPost(title, body, userID)
			if err != nil {
				return err
			}
			created, err := newClient().CreatePost(cmd.Context(), p)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Post created successfully! ID: %d\n", created.ID)
			fmt.Fprintf(out, "title:  %s\nbody:   %s\nuserId: %d\n", created.Title, created.Body, created.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&body, "body", "", "post body (default \""+forms.DefaultPostBody+"\")")
	cmd.Flags().IntVar(&userID, "user-id", 1, fmt.Sprintf("author id, 1-%d", forms.MaxUserID))
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
