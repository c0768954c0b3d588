// Command cadra computes a risk assessment for a single Active Directory
// principal against a BloodHound-style Neo4j graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cadra/cadra/internal/config"
	"github.com/cadra/cadra/internal/driver"
	"github.com/cadra/cadra/internal/graph"
	"github.com/cadra/cadra/internal/permission"
	"github.com/cadra/cadra/internal/ruleengine"
)

func main() {
	var (
		verbose    = flag.Bool("v", false, "Enable verbose logging")
		configPath = flag.String("config", "config.json", "Configuration file path")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	principalName := flag.Arg(0)

	if !*verbose {
		log.SetFlags(log.LstdFlags)
	} else {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	graphConfig := graph.GraphConfig{
		URI:         cfg.Neo4jConfig.URI,
		Username:    cfg.Neo4jConfig.User,
		Password:    cfg.Neo4jConfig.Password,
		ConnTimeout: graph.DefaultGraphConfig().ConnTimeout,
	}
	store, err := graph.NewNeo4jStore(ctx, graphConfig)
	if err != nil {
		log.Fatalf("graph connectivity error: %v", err)
	}
	defer store.Close(context.Background())

	attributeEngine := ruleengine.New()
	if err := attributeEngine.LoadRulesFromDirectory(cfg.AttributesRulesDirPath); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	permissionRules, err := permission.LoadRulesFromDirectory(cfg.PermissionsRulesDirPath)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	eventMonitoring, invalid := cfg.EventMonitoringInts()
	for _, k := range invalid {
		log.Printf("config: ignoring non-numeric event monitoring key %q", k)
	}

	d := driver.New(store, attributeEngine, permissionRules, eventMonitoring)

	report, err := d.Run(ctx, principalName)
	if err != nil {
		log.Printf("assessment error: %v", err)
		os.Exit(1)
	}

	fmt.Println(report.String())
}

func usage() {
	fmt.Fprintf(os.Stderr, `cadra - Complex Active Directory Risk Assessment

Usage:
  cadra [-v] [-config path] <principal-name>

Flags:
`)
	flag.PrintDefaults()
}
