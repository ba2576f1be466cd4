package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"commonhub/internal/auth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	userID string
	role   string
	secret string
	ttl    time.Duration
}

type tokenResult struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	ExpiresIn   int       `json:"expires_in"`
}

// NewTokenCommand mints access tokens for local development. Production
// tokens come from the portal's identity service.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(rootOpts, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "user ID (default: random)")
	cmd.Flags().StringVar(&opts.role, "role", auth.RoleResident, "role (resident|admin)")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "signing secret (default: $JWT_SECRET)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", auth.AccessTokenTTL, "token lifetime")

	return cmd
}

func runToken(rootOpts *RootOptions, opts *tokenOptions, w io.Writer) error {
	userID := uuid.New()
	if opts.userID != "" {
		parsed, err := uuid.Parse(opts.userID)
		if err != nil {
			return fmt.Errorf("invalid --user %q: %w", opts.userID, err)
		}
		userID = parsed
	}

	ttl := opts.ttl
	if ttl <= 0 {
		ttl = auth.AccessTokenTTL
	}

	secret := opts.secret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return fmt.Errorf("no signing secret: pass --secret or set JWT_SECRET")
	}

	token, err := auth.GenerateAccessToken(userID, opts.role, secret, ttl)
	if err != nil {
		return err
	}

	result := tokenResult{
		AccessToken: token,
		UserID:      userID,
		Role:        opts.role,
		ExpiresIn:   int(ttl.Seconds()),
	}

	f := &OutputFormatter{Format: rootOpts.Format, Writer: w}
	return f.Render(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.AccessToken)
		return err
	})
}
