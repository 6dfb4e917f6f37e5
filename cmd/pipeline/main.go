package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"filingqa/pkg/core/agent"
	"filingqa/pkg/core/pipeline"
	"filingqa/pkg/core/qagen"
	"filingqa/pkg/core/registry"
	"filingqa/pkg/core/store"
	"filingqa/pkg/core/writer"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// credentialEnv maps a provider name to the environment variable holding its
// API key. The key is checked before anything touches the network.
var credentialEnv = map[string]string{
	"gemini":        "GEMINI_API_KEY",
	"gemini-direct": "GEMINI_API_KEY",
	"deepseek":      "DEEPSEEK_API_KEY",
	"openai":        "OPENAI_API_KEY",
}

func main() {
	filingsDir := flag.String("filings", "data/filings", "Directory holding local 10-K Markdown files")
	output := flag.String("out", "output/qa_dataset.jsonl", "JSON Lines output path")
	maxQuestions := flag.Int("max-questions", 10, "Maximum QA pairs per filing")
	mdaOnly := flag.Bool("mda-only", true, "Ground generation in the MD&A section only")
	forceRefresh := flag.Bool("force", false, "Regenerate filings that already have a stored dataset")
	configPath := flag.String("config", "config/models.yaml", "Provider selection config")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	// Provider selection from config, defaulting to Gemini
	agentCfg := agent.Config{ActiveProvider: "gemini"}
	if configData, err := os.ReadFile(*configPath); err == nil {
		if err := yaml.Unmarshal(configData, &agentCfg); err != nil {
			log.Fatalf("Error: invalid provider config %s: %v", *configPath, err)
		}
	}
	providerName := agentCfg.ActiveProvider
	opts := map[string]interface{}{}
	if ac, ok := agentCfg.Agents["qa_generator"]; ok {
		if ac.Provider != "" {
			providerName = ac.Provider
		}
		if ac.Model != "" {
			opts["model"] = ac.Model
		}
	}

	// Fail fast on a missing credential, before any filing is processed
	envVar, ok := credentialEnv[providerName]
	if !ok {
		log.Fatalf("Error: unknown provider %q in %s", providerName, *configPath)
	}
	if os.Getenv(envVar) == "" {
		log.Fatalf("Error: %s is not set.", envVar)
	}

	fmt.Printf("QA Dataset Pipeline starting (provider: %s)...\n", providerName)

	ctx := context.Background()

	// "gemini-direct" keeps one Gemini client open across the whole registry
	// run instead of going through the manager's per-call provider layer
	var provider qagen.AIProvider
	if providerName == "gemini-direct" {
		modelName, _ := opts["model"].(string)
		direct, err := qagen.NewDirectGeminiClient(ctx, modelName)
		if err != nil {
			log.Fatalf("Error: failed to create Gemini client: %v", err)
		}
		defer direct.Close()
		provider = direct
	} else {
		mgr := agent.NewManager(agentCfg)
		provider = &qagen.ProviderAdapter{Manager: mgr, AgentType: "qa_generator", Options: opts}
	}
	generator := qagen.NewGenerator(provider)

	filings, err := registry.Resolve(registry.Default(), *filingsDir)
	if err != nil {
		log.Fatalf("Error: failed to resolve filing registry: %v", err)
	}

	out, err := writer.Create(*output)
	if err != nil {
		log.Fatalf("Error: failed to open output: %v", err)
	}

	section := registry.SectionFull
	if *mdaOnly {
		section = registry.SectionMDA
	}

	orch := pipeline.NewOrchestrator(generator, out, pipeline.Config{
		MaxQuestions: *maxQuestions,
		Section:      section,
		ProviderName: providerName,
		ForceRefresh: *forceRefresh,
	})

	// Dataset store: DB when DATABASE_URL is set, file cache otherwise
	pool, err := store.Connect(ctx)
	if err != nil {
		fmt.Printf("No database configured (%v), using file cache.\n", err)
	} else {
		defer pool.Close()
	}
	orch.SetRepository(store.NewDatasetStore(pool, ""))

	summary, err := orch.Run(ctx, filings)
	if cerr := out.Close(); cerr != nil {
		log.Fatalf("Error: failed to finalize output: %v", cerr)
	}
	if err != nil {
		log.Fatalf("Error: pipeline aborted: %v", err)
	}

	fmt.Printf("\nDone. %d records in %s (%d filings processed, %d skipped, %d failed)\n",
		summary.Records, *output, summary.Processed, summary.Skipped, summary.Failed)
	if summary.Processed == 0 && summary.Failed > 0 {
		os.Exit(1)
	}
}
