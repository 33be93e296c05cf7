package root

import (
	generatecmd "github.com/blwy10/cognition-revops-agent/apps/cli/cmd/generate"
	validatecmd "github.com/blwy10/cognition-revops-agent/apps/cli/cmd/validate"
	vocabcmd "github.com/blwy10/cognition-revops-agent/apps/cli/cmd/vocab"
)

func init() {
	Root().AddCommand(generatecmd.Command())
	Root().AddCommand(validatecmd.Command())
	Root().AddCommand(vocabcmd.Command())
}
