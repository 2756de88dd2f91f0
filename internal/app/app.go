package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"meal-plan-generator/internal/config"
	"meal-plan-generator/internal/planner"
	"meal-plan-generator/internal/pricing"
	"meal-plan-generator/internal/recipe"
)

// App holds the application's dependencies.
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	catalog   *recipe.Catalog
	generator *planner.Generator
	out       io.Writer
}

// NewApp loads the recipe catalog and builds the generator from cfg.
func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("recipe catalog loaded",
		zap.Int("recipes", catalog.Count()),
		zap.String("path", cfg.CatalogPath),
	)

	opts := []planner.Option{
		planner.WithLogger(logger),
		planner.WithDayCount(cfg.DayCount),
	}
	if cfg.Seeded {
		opts = append(opts, planner.WithRandom(planner.SeededRandom(cfg.Seed)))
	}

	generator, err := planner.NewGenerator(catalog, pricing.DefaultTable(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal plan generator: %w", err)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalog,
		generator: generator,
		out:       out,
	}, nil
}

func loadCatalog(cfg *config.Config) (*recipe.Catalog, error) {
	if cfg.CatalogPath != "" {
		return recipe.LoadCatalogFile(cfg.CatalogPath)
	}
	catalog, err := recipe.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in recipe catalog: %w", err)
	}
	return catalog, nil
}

// LoadProfile reads a MealPlanInput from a JSON file.
func LoadProfile(path string) (planner.MealPlanInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return planner.MealPlanInput{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	var input planner.MealPlanInput
	if err := json.Unmarshal(data, &input); err != nil {
		return planner.MealPlanInput{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return input, nil
}

// GenerateMealPlan validates the profile, generates a plan, and renders it.
func (a *App) GenerateMealPlan(input planner.MealPlanInput, sessionID string, asJSON bool) (*planner.MealPlanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := a.generator.GenerateMealPlan(input, sessionID)
	if err != nil {
		return nil, err
	}
	a.logger.Info("meal plan generated",
		zap.String("session_id", sessionID),
		zap.Int("meals", len(plan.Meals)),
		zap.Float64("total_cost", plan.TotalEstimatedCost),
	)

	if asJSON || a.cfg.Output == config.OutputJSON {
		return plan, writeJSON(a.out, plan)
	}
	renderPlan(a.out, plan)
	return plan, nil
}

// PrintShoppingList generates a plan and renders only its grocery list.
func (a *App) PrintShoppingList(input planner.MealPlanInput, sessionID string, asJSON bool) error {
	if err := input.Validate(); err != nil {
		return err
	}
	plan, err := a.generator.GenerateMealPlan(input, sessionID)
	if err != nil {
		return err
	}
	if asJSON || a.cfg.Output == config.OutputJSON {
		return writeJSON(a.out, plan.GroceryList)
	}
	renderGroceryList(a.out, plan)
	return nil
}

// ListRecipes prints the catalog, or only the recipes matching input when
// filter is set.
func (a *App) ListRecipes(input planner.MealPlanInput, filter, asJSON bool) error {
	templates := a.catalog.Templates()
	if filter {
		if err := input.Validate(); err != nil {
			return err
		}
		templates = a.generator.Candidates(input)
	}

	if asJSON || a.cfg.Output == config.OutputJSON {
		if templates == nil {
			templates = []recipe.Template{}
		}
		return writeJSON(a.out, templates)
	}

	fmt.Fprintf(a.out, "=== RECIPES (%d) ===\n", len(templates))
	for _, t := range templates {
		fmt.Fprintf(a.out, "%-28s %-16s %3d min  %s\n", t.ID, t.Category, t.TotalTime(), t.Name)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func renderPlan(w io.Writer, plan *planner.MealPlanResult) {
	fmt.Fprintln(w, "=== WEEKLY MEAL PLAN ===")
	for _, m := range plan.Meals {
		fmt.Fprintf(w, "Day %d: %s (%d min, $%.2f)\n", m.Day, m.Name, m.TotalTime, m.EstimatedCost)
		if m.WhyItWorks != "" {
			fmt.Fprintf(w, "       %s\n", m.WhyItWorks)
		}
	}

	fmt.Fprintln(w)
	renderGroceryList(w, plan)

	fmt.Fprintln(w, "\n=== SUMMARY ===")
	fmt.Fprintf(w, "Total time:       %d min (avg %.1f per meal)\n", plan.TotalPrepTime, plan.AverageTimePerMeal)
	fmt.Fprintf(w, "Total cost:       $%.2f (avg $%.2f per meal)\n", plan.TotalEstimatedCost, plan.AverageCostPerMeal)

	renderTips(w, "PREP AHEAD", plan.PrepAheadTips)
	renderTips(w, "TIME SAVERS", plan.TimeSavingTips)
	renderTips(w, "BUDGET", plan.BudgetTips)
	renderTips(w, "PICKY EATERS", plan.PickyEaterTips)
}

func renderGroceryList(w io.Writer, plan *planner.MealPlanResult) {
	fmt.Fprintln(w, "=== SHOPPING LIST ===")
	for _, section := range plan.GroceryList.OrganizedByStore {
		fmt.Fprintf(w, "\n%s\n", section.Name)
		for _, item := range section.Items {
			fmt.Fprintf(w, "- %s: %g %s ($%.2f) [days %s]\n",
				item.Name, item.Amount, item.Unit, item.EstimatedCost, joinDays(item.UsedInMeals))
		}
	}
	fmt.Fprintf(w, "\nEstimated total: $%.2f\n", plan.GroceryList.TotalEstimatedCost)
}

func renderTips(w io.Writer, title string, tips []string) {
	if len(tips) == 0 {
		return
	}
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	for _, tip := range tips {
		fmt.Fprintf(w, "- %s\n", tip)
	}
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, ",")
}
