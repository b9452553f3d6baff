// builder is a small local driver for the editing session: it keeps the
// document in the snapshot store, talks to the backend when logged in, and
// calls the generative model directly for the AI operations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"resume-builder/internal/config"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	"resume-builder/pkg/apiclient"
	"resume-builder/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zlog.Sync()

	st, err := store.Open(cfg.Store.Dir)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}

	var session *usecase.Session
	api := apiclient.New(baseURL,
		apiclient.WithTokenSource(func() string { return session.Token() }),
		apiclient.WithLogger(zlog.Named("api")),
	)
	session = usecase.NewSession(st, api,
		usecase.WithDebounce(cfg.Sync.Debounce),
		usecase.WithLogger(zlog),
	)

	ctx := context.Background()
	session.Load(ctx)

	switch os.Args[1] {
	case "show":
		printJSON(session.Document())

	case "sample":
		session.Apply(func(model.Resume) model.Resume { return model.SampleResume() })
		fmt.Println("sample document written")

	case "login":
		if len(os.Args) < 4 {
			log.Fatal("usage: builder login <email> <password>")
		}
		resp, err := api.Login(ctx, os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		if err := session.SignIn(resp.Token, resp.User); err != nil {
			log.Fatalf("session: %v", err)
		}
		fmt.Printf("logged in as %s\n", resp.User.Email)

	case "logout":
		session.Logout()
		fmt.Println("logged out")

	case "import":
		if len(os.Args) < 3 {
			log.Fatal("usage: builder import <file.pdf>")
		}
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			log.Fatalf("read: %v", err)
		}
		parsed := newAIClient(ctx, cfg, st, zlog).ParseResumeFromBinary(ctx, data, mimeFor(os.Args[2]))
		session.Apply(func(cur model.Resume) model.Resume {
			return model.MergeParsed(cur, parsed)
		})
		fmt.Println("import merged into document")

	case "score":
		rep := newAIClient(ctx, cfg, st, zlog).CheckATSScore(ctx, session.Document())
		printJSON(rep)
		if rep.Rating != ai.RatingUnavailable {
			session.Apply(func(cur model.Resume) model.Resume {
				score := rep.Score
				cur.ATSScore = &score
				return cur
			})
		}

	case "summary":
		if len(os.Args) < 3 {
			log.Fatal("usage: builder summary <jobTitle> [skill ...]")
		}
		text := newAIClient(ctx, cfg, st, zlog).OptimizeSummary(ctx, os.Args[2], os.Args[3:])
		if text == "" {
			fmt.Println("summary unavailable, try again later")
			break
		}
		session.Apply(func(cur model.Resume) model.Resume {
			cur.PersonalInfo.Summary = text
			return cur
		})
		fmt.Println(text)

	case "optimize":
		optimized := newAIClient(ctx, cfg, st, zlog).OptimizeResumeForATS(ctx, session.Document())
		session.Apply(func(model.Resume) model.Resume { return optimized })
		fmt.Println("document optimized")

	default:
		usage()
		os.Exit(2)
	}

	session.Flush(ctx)
}

// newAIClient wires the model client the same way the server does, except
// the circuit-breaker deadline is persisted in the snapshot store so it
// survives between invocations.
func newAIClient(ctx context.Context, cfg *config.Config, st *store.Store, zlog *zap.Logger) *ai.Client {
	if cfg.AI.APIKey == "" {
		log.Fatal("AI_API_KEY is required for this command")
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.AI.APIKey),
		googleai.WithDefaultModel(cfg.AI.Model),
	)
	if err != nil {
		log.Fatalf("generative model client: %v", err)
	}
	return ai.New(llm,
		ai.WithDefaultModel(cfg.AI.Model),
		ai.WithRetries(cfg.AI.Retries),
		ai.WithBackoff(cfg.AI.InitialDelay, cfg.AI.MaxDelay),
		ai.WithBreaker(ai.NewBreaker(cfg.AI.BreakerWindow, nil, st)),
		ai.WithLogger(zlog.Named("ai")),
	)
}

func mimeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(path, ".doc"):
		return "application/msword"
	}
	return "application/pdf"
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: builder <command>

  show                       print the current document
  sample                     load the sample document
  login <email> <password>   sign in against the backend
  logout                     clear the session
  import <file>              parse a resume file with AI and merge it
  score                      run the ATS analysis
  summary <jobTitle> [skill ...]
  optimize                   rewrite the document for ATS impact`)
}
