package cmd

import (
	"context"

	"github.com/PolarWolf314/campus/internal/records"
	"github.com/PolarWolf314/campus/internal/workflows"
	"github.com/spf13/cobra"
)

var authUsername string

// addAuthFlags registers --username on a command group whose subcommands
// act as a logged-in account.
func addAuthFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&authUsername, "username", "u", "", "account to act as (password from $"+EnvPassword+" or a prompt)")
}

func resetAuthFlagState() {
	authUsername = ""
}

// authenticate logs in the account named by --username.
func authenticate(p *prompter) (records.Account, error) {
	username := authUsername
	if username == "" {
		var err error
		if username, err = p.Line("Username: "); err != nil {
			return records.Account{}, err
		}
	}
	password, err := p.loginPassword("Password: ")
	if err != nil {
		return records.Account{}, err
	}

	Logger.Debugf("Authenticating %s", username)
	result, err := workflows.Login(context.Background(), workflows.LoginOptions{
		Username: username,
		Password: password,
	})
	if err != nil {
		return records.Account{}, err
	}
	Logger.Infof("Authenticated %s as %s", result.Account.Username, result.Account.Role)
	return result.Account, nil
}
