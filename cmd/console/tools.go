package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rb-admin-console/internal/backend"
	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/service/formatter"
	"rb-admin-console/internal/service/session"
)

var errTemplatesInconsistent = errors.New("message templates have inconsistent placeholders")

var checkTemplatesCmd = &cobra.Command{
	Use:   "check-templates",
	Short: "Report message templates whose placeholders do not match the declared list",
	RunE:  runCheckTemplates,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := session.HashPassword(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var checkToken string

func init() {
	checkTemplatesCmd.Flags().StringVar(&checkToken, "token", "", "backend token used to load templates")
}

func runCheckTemplates(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := context.Background()

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, nil)
	store := collection.NewStore(domain.MessageTemplates(), client, nil, nil)
	if store.Online() {
		if err := store.Refresh(ctx, checkToken, nil); err != nil {
			return fmt.Errorf("failed to load message templates: %w", err)
		}
	} else {
		store.EnsureLoaded(ctx, checkToken, nil)
	}

	items := store.Snapshot().Items
	issues := formatter.CheckAll(items)
	out := cmd.OutOrStdout()
	for _, issue := range issues {
		fmt.Fprintf(out, "%s\t%s\tfound: [%s]\tdeclared: [%s]\n",
			issue.ID, issue.Type, strings.Join(issue.Found, ", "), strings.Join(issue.Declared, ", "))
	}
	fmt.Fprintf(out, "checked %d templates, %d inconsistent\n", len(items), len(issues))

	if len(issues) > 0 {
		return errTemplatesInconsistent
	}
	return nil
}
