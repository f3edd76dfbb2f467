// Copyright 2024 The Ontograph Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ontograph/ontograph/clog"
	"github.com/ontograph/ontograph/cmd/ontograph/command"
	"github.com/ontograph/ontograph/version"

	// Install the glog adapter as the default logger.
	_ "github.com/ontograph/ontograph/clog/glog"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ontograph",
		Short:   "Ontograph is a semantic backend for visual ontology models.",
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if conf, _ := cmd.Flags().GetString("config"); conf != "" {
				viper.SetConfigFile(conf)
			} else {
				viper.SetConfigName("ontograph")
				viper.AddConfigPath(".")
				viper.AddConfigPath("$HOME/.ontograph")
				viper.AddConfigPath("/etc")
			}
			err := viper.ReadInConfig()
			if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
				return err
			} else if err == nil {
				clog.Infof("using config file: %s", viper.ConfigFileUsed())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("graph", "g", "", "path to the graph model JSON document")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to an explicit configuration file")
	rootCmd.PersistentFlags().String("base", "", "base IRI for generated entity IRIs")
	rootCmd.PersistentFlags().String("prefix", "", "namespace prefix for generated entity IRIs")
	viper.BindPFlag(command.KeyGraphPath, rootCmd.PersistentFlags().Lookup("graph"))
	viper.BindPFlag(command.KeyBaseIRI, rootCmd.PersistentFlags().Lookup("base"))
	viper.BindPFlag(command.KeyPrefix, rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(
		command.NewExportCmd(),
		command.NewQueryCmd(),
		command.NewReplCmd(),
		command.NewHttpCmd(),
		command.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
