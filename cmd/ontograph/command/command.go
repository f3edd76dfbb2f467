package command

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ontograph/ontograph"
	"github.com/ontograph/ontograph/translate"
)

const (
	KeyGraphPath = "graph.path"

	KeyBaseIRI = "ontology.base_iri"
	KeyPrefix  = "ontology.prefix"

	KeyQueryLimit = "query.limit"
)

var ErrNoGraphModel = errors.New("no graph model specified")

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

func buildOptions() translate.Options {
	return translate.Options{
		Prefix:  viper.GetString(KeyPrefix),
		BaseIRI: viper.GetString(KeyBaseIRI),
	}
}

func openHandle(cmd *cobra.Command) (*ontograph.Handle, error) {
	path := viper.GetString(KeyGraphPath)
	if path == "" {
		return nil, ErrNoGraphModel
	}
	return ontograph.Load(path, buildOptions())
}
