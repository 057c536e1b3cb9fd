package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/devdash-console/agent"
	"github.com/rpupo63/devdash-console/client"
	"github.com/rpupo63/devdash-console/config"
	"github.com/rpupo63/devdash-console/controller"
	"github.com/rpupo63/devdash-console/credstore"
	"github.com/rpupo63/devdash-console/models"
	"github.com/rpupo63/devdash-console/notify"
	"github.com/rpupo63/devdash-console/wizard"
)

// console bundles everything a subcommand needs.
type console struct {
	client     *client.Client
	agent      *agent.Agent
	notifier   notify.Notifier
	developers *controller.ListController
	skillAreas *controller.ListController
	projects   *controller.ListController
	categories *controller.ListController
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	c := config.New()
	baseURL := config.GetString(c, "DEVDASH_API_URL", "http://localhost:8080")

	creds, err := credstore.NewFile()
	if err != nil {
		fmt.Printf("Error locating credential store: %v\n", err)
		os.Exit(1)
	}

	notifier := notify.NewConsole(log.Logger)
	api := client.New(baseURL, creds, notifier)
	api.OnUnauthorized = func() {
		fmt.Println("Run `devdash login` to start a new session.")
	}

	app := &console{
		client:     api,
		agent:      agent.New(api),
		notifier:   notifier,
		developers: controller.New("developers", client.DeveloperSource{Client: api}, notifier),
		skillAreas: controller.New("skill areas", client.SkillAreaSource{Client: api}, notifier),
		projects:   controller.New("projects", client.ProjectSource{Client: api}, notifier),
		categories: controller.New("categories", client.CategorySource{Client: api}, notifier),
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`usage: devdash <command> [args]

commands:
  login             -email -password
  developers        list | get | create | update
  skill-areas       list | get | create
  projects          list | get | create
  categories        list | create | update
  agent             query | analyze`)
}

func (a *console) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "developers":
		return a.runDevelopers(ctx, args)
	case "skill-areas":
		return a.runSkillAreas(ctx, args)
	case "projects":
		return a.runProjects(ctx, args)
	case "categories":
		return a.runCategories(ctx, args)
	case "agent":
		return a.runAgent(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *console) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)

	if err := a.client.Login(ctx, *email, *password); err != nil {
		return err
	}
	a.notifier.Success("Logged in.")
	return nil
}

func (a *console) runDevelopers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("developers: missing subcommand")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("developers list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		filter := fs.String("filter", "", "substring filter on name/email/role")
		fs.Parse(args[1:])

		if err := a.developers.Load(ctx, *page); err != nil {
			return err
		}
		for _, item := range a.developers.Filter(*filter) {
			d := item.(models.Developer)
			fmt.Printf("%4d  %-24s %-30s %-22s available=%v\n", d.ID, d.Name, d.Email, d.Role, d.IsAvailable)
		}
		fmt.Printf("page %d of %d\n", a.developers.CurrentPage(), a.developers.TotalPages())
		return nil
	case "get":
		fs := flag.NewFlagSet("developers get", flag.ExitOnError)
		id := fs.Int64("id", 0, "developer id")
		fs.Parse(args[1:])

		raw, err := a.client.GetDeveloper(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	case "create":
		fs := flag.NewFlagSet("developers create", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email address")
		role := fs.String("role", "", "role title")
		graduation := fs.String("graduation-date", "", "YYYY-MM-DD")
		experience := fs.Int("experience", 0, "industry experience in years")
		start := fs.String("start-date", "", "employment start date YYYY-MM-DD")
		fs.Parse(args[1:])

		draft := models.NewDeveloperDraft(*name, *email, *role)
		if *graduation != "" {
			draft["graduation_date"] = *graduation
		}
		if *start != "" {
			draft["employment_start_date"] = *start
		}
		draft["industry_experience"] = *experience

		created, err := a.developers.Create(ctx, draft)
		if err != nil {
			return err
		}
		a.notifier.Success(fmt.Sprintf("Developer #%d created.", created.EntityID()))
		return nil
	case "update":
		fs := flag.NewFlagSet("developers update", flag.ExitOnError)
		id := fs.Int64("id", 0, "developer id")
		fs.Parse(args[1:])

		// Only pairs the user actually passed go into the payload, keeping
		// the partial-PUT contract: unset fields are never overwritten.
		fields := collectFieldArgs(fs.Args())
		if *id == 0 {
			return fmt.Errorf("developers update: -id is required")
		}
		if len(fields) == 0 {
			return fmt.Errorf("developers update: no field=value pairs given")
		}

		raw, err := a.client.UpdateDeveloper(ctx, *id, fields)
		if err != nil {
			return err
		}
		a.notifier.Success("Developer updated.")
		return printJSON(raw)
	default:
		return fmt.Errorf("developers: unknown subcommand %q", args[0])
	}
}

func (a *console) runSkillAreas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("skill-areas: missing subcommand")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("skill-areas list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		fs.Parse(args[1:])

		if err := a.skillAreas.Load(ctx, *page); err != nil {
			return err
		}
		for _, item := range a.skillAreas.Items() {
			area := item.(models.SkillArea)
			fmt.Printf("%4d  %s\n", area.ID, area.Name)
		}
		fmt.Printf("page %d of %d\n", a.skillAreas.CurrentPage(), a.skillAreas.TotalPages())
		return nil
	case "get":
		fs := flag.NewFlagSet("skill-areas get", flag.ExitOnError)
		id := fs.Int64("id", 0, "skill area id")
		fs.Parse(args[1:])

		raw, err := a.client.GetSkillArea(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	case "create":
		fs := flag.NewFlagSet("skill-areas create", flag.ExitOnError)
		name := fs.String("name", "", "area name")
		skills := fs.String("skills", "", "comma-separated skill names")
		fs.Parse(args[1:])

		created, err := a.skillAreas.Create(ctx, map[string]any{
			"name":   *name,
			"skills": *skills,
		})
		if err != nil {
			return err
		}
		a.notifier.Success(fmt.Sprintf("Skill area #%d created.", created.EntityID()))
		return nil
	default:
		return fmt.Errorf("skill-areas: unknown subcommand %q", args[0])
	}
}

func (a *console) runProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("projects: missing subcommand")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("projects list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		filter := fs.String("filter", "", "substring filter")
		fs.Parse(args[1:])

		if err := a.projects.Load(ctx, *page); err != nil {
			return err
		}
		for _, item := range a.projects.Filter(*filter) {
			p := item.(models.Project)
			fmt.Printf("%4d  %-28s dev=%d origin=%s\n", p.ID, p.Name, p.Developer, p.Origin)
		}
		fmt.Printf("page %d of %d\n", a.projects.CurrentPage(), a.projects.TotalPages())
		return nil
	case "get":
		fs := flag.NewFlagSet("projects get", flag.ExitOnError)
		id := fs.Int64("id", 0, "project id")
		fs.Parse(args[1:])

		raw, err := a.client.GetProject(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	case "create":
		return a.createProject(ctx, args[1:])
	default:
		return fmt.Errorf("projects: unknown subcommand %q", args[0])
	}
}

// createProject drives the full wizard flow from flags, including the
// optional inline-category side-quest.
func (a *console) createProject(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects create", flag.ExitOnError)
	name := fs.String("name", "", "project name")
	developer := fs.Int64("developer", 0, "developer id")
	description := fs.String("description", "", "description")
	origin := fs.String("origin", "", "project origin")
	techStack := fs.String("tech", "", "comma-separated tech stack")
	categories := fs.String("categories", "", "comma-separated category ids")
	skills := fs.String("skills", "", "comma-separated skill ids")
	newCategory := fs.String("new-category", "", "create and select a category inline")
	repoLink := fs.String("repo-link", "", "repository URL")
	fs.Parse(args)

	w := wizard.New(a.client, a.categories, a.projects, a.notifier)

	if *newCategory != "" {
		if err := w.BeginCategoryCreation(); err != nil {
			return err
		}
		if _, err := w.CreateCategory(ctx, map[string]any{"name": *newCategory}); err != nil {
			return err
		}
	}

	basics := wizard.Basics{
		Name:        *name,
		Developer:   *developer,
		Description: *description,
		Origin:      *origin,
		TechStack:   splitList(*techStack),
		Categories:  splitIDs(*categories),
		RepoLink:    *repoLink,
	}
	// Inline-created categories are already selected on the wizard; merge.
	basics.Categories = append(w.Basics().Categories, basics.Categories...)
	if err := w.SubmitBasics(basics); err != nil {
		return err
	}

	for _, id := range splitIDs(*skills) {
		w.ToggleSkill(id)
	}

	project, err := w.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("created project #%d %q\n", project.ID, project.Name)
	return nil
}

func (a *console) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("categories: missing subcommand")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("categories list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		fs.Parse(args[1:])

		if err := a.categories.Load(ctx, *page); err != nil {
			return err
		}
		for _, item := range a.categories.Items() {
			c := item.(models.Category)
			fmt.Printf("%4d  %-24s %s\n", c.ID, c.Name, c.Description)
		}
		return nil
	case "create":
		fs := flag.NewFlagSet("categories create", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		description := fs.String("description", "", "description")
		useCases := fs.String("use-cases", "", "comma-separated use cases")
		fs.Parse(args[1:])

		created, err := a.categories.Create(ctx, map[string]any{
			"name":        *name,
			"description": *description,
			"use_cases":   splitList(*useCases),
		})
		if err != nil {
			return err
		}
		a.notifier.Success(fmt.Sprintf("Category #%d created.", created.EntityID()))
		return nil
	case "update":
		fs := flag.NewFlagSet("categories update", flag.ExitOnError)
		id := fs.Int64("id", 0, "category id")
		description := fs.String("description", "", "replacement description")
		addUseCases := fs.String("add-use-cases", "", "use cases to APPEND server-side")
		fs.Parse(args[1:])

		fields := map[string]any{}
		if *description != "" {
			fields["description"] = *description
		}
		if *addUseCases != "" {
			fields["use_cases"] = splitList(*addUseCases)
		}
		if len(fields) == 0 {
			return fmt.Errorf("categories update: nothing to change")
		}

		raw, err := a.client.UpdateCategory(ctx, *id, fields)
		if err != nil {
			return err
		}
		a.notifier.Success("Category updated.")
		return printJSON(raw)
	default:
		return fmt.Errorf("categories: unknown subcommand %q", args[0])
	}
}

func (a *console) runAgent(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("agent: missing subcommand")
	}
	switch args[0] {
	case "query":
		fs := flag.NewFlagSet("agent query", flag.ExitOnError)
		query := fs.String("q", "", "free-text question")
		fs.Parse(args[1:])

		result, err := a.agent.Query(ctx, *query)
		if err != nil {
			return err
		}
		fmt.Printf("[%s] %s\n", result.Model, result.Response)
		return nil
	case "analyze":
		fs := flag.NewFlagSet("agent analyze", flag.ExitOnError)
		name := fs.String("name", "", "project name")
		description := fs.String("description", "", "project description")
		file := fs.String("file", "", "path to a PDF or DOCX brief")
		skills := fs.String("skills", "", "comma-separated required skills")
		categories := fs.String("categories", "", "comma-separated category names")
		fs.Parse(args[1:])

		req := models.AnalyzeRequest{
			ProjectName:    *name,
			Description:    *description,
			RequiredSkills: splitList(*skills),
			Categories:     splitList(*categories),
		}
		if *file != "" {
			content, err := os.ReadFile(*file)
			if err != nil {
				return err
			}
			req.FileName = *file
			req.FileContent = content
		}

		analysis, err := a.agent.AnalyzeProject(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("[%s] analyzed %d developers\n", analysis.Model, analysis.TotalDevelopersAnalyzed)
		fmt.Printf("required skills: %s\n", strings.Join(analysis.RequiredSkills, ", "))
		fmt.Printf("categories: %s\n", strings.Join(analysis.ProjectCategories, ", "))
		fmt.Println(analysis.Analysis)
		return nil
	default:
		return fmt.Errorf("agent: unknown subcommand %q", args[0])
	}
}

// collectFieldArgs parses trailing key=value pairs into an update payload,
// coercing ints and bools where they parse.
func collectFieldArgs(args []string) map[string]any {
	fields := map[string]any{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(value); err == nil {
			fields[key] = n
			continue
		}
		if b, err := strconv.ParseBool(value); err == nil {
			fields[key] = b
			continue
		}
		fields[key] = value
	}
	return fields
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitIDs(value string) []int64 {
	ids := []int64{}
	for _, part := range splitList(value) {
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
