package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phylax/contracts/internal/auth"
	"github.com/phylax/contracts/internal/config"
	"github.com/phylax/contracts/models"
)

func tokenCmd() *cobra.Command {
	var (
		userID string
		name   string
		role   string
		secret string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a gateway token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLI()
			if err != nil {
				return err
			}
			if secret == "" {
				secret = cfg.JWTSecret
			}
			if secret == "" {
				return errors.New("no signing secret: pass --secret or set JWT_SECRET")
			}
			if ttl <= 0 {
				ttl = cfg.JWTTTL
			}
			r, err := models.ParseUserRole(role)
			if err != nil {
				return reportInvalid(cmd, err)
			}
			token, exp, err := auth.New(secret, ttl).IssueToken(userID, name, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (token subject)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(models.RoleOperator), "admin, operator or field_agent")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default $JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default $JWT_TTL)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
