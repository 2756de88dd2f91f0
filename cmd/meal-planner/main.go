package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meal-plan-generator/internal/app"
	"meal-plan-generator/internal/config"
	"meal-plan-generator/internal/logger"
	"meal-plan-generator/internal/planner"
	"meal-plan-generator/internal/recipe"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	application, err := app.NewApp(cfg, zl, os.Stdout)
	if err != nil {
		zl.Fatal("Failed to initialize application", zap.Error(err))
	}

	switch os.Args[1] {
	case "generate":
		fs := flag.NewFlagSet("generate", flag.ExitOnError)
		pf := registerProfileFlags(fs)
		session := fs.String("session", "", "Session id echoed in the plan (default: random uuid)")
		asJSON := fs.Bool("json", false, "Print the plan as JSON")
		fs.Parse(os.Args[2:])

		input := pf.input(zl)
		if _, err := application.GenerateMealPlan(input, sessionID(*session), *asJSON); err != nil {
			exitOnPlanError(zl, "Meal plan generation failed", err)
		}
	case "shopping":
		fs := flag.NewFlagSet("shopping", flag.ExitOnError)
		pf := registerProfileFlags(fs)
		session := fs.String("session", "", "Session id (default: random uuid)")
		asJSON := fs.Bool("json", false, "Print the list as JSON")
		fs.Parse(os.Args[2:])

		input := pf.input(zl)
		if err := application.PrintShoppingList(input, sessionID(*session), *asJSON); err != nil {
			exitOnPlanError(zl, "Shopping list generation failed", err)
		}
	case "recipes":
		fs := flag.NewFlagSet("recipes", flag.ExitOnError)
		pf := registerProfileFlags(fs)
		filter := fs.Bool("filter", false, "Only list recipes matching the profile")
		asJSON := fs.Bool("json", false, "Print the recipes as JSON")
		fs.Parse(os.Args[2:])

		if err := application.ListRecipes(pf.input(zl), *filter, *asJSON); err != nil {
			zl.Fatal("Listing recipes failed", zap.Error(err))
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

type profileFlags struct {
	profile   *string
	picky     *string
	diet      *string
	allergies *string
	time      *int
	skill     *string
	equipment *string
	family    *int
	children  *int
}

func registerProfileFlags(fs *flag.FlagSet) *profileFlags {
	return &profileFlags{
		profile:   fs.String("profile", "", "Path to a JSON household profile; overrides the other profile flags"),
		picky:     fs.String("picky", string(recipe.PickyNone), "Picky eater level: severe, moderate, mild, none"),
		diet:      fs.String("diet", "", "Comma-separated dietary restrictions"),
		allergies: fs.String("allergies", "", "Comma-separated allergies"),
		time:      fs.Int("time", 45, "Minutes available for cooking each night"),
		skill:     fs.String("skill", string(recipe.SkillBeginner), "Cooking skill: beginner, intermediate, advanced"),
		equipment: fs.String("equipment", "", "Comma-separated kitchen equipment"),
		family:    fs.Int("family", 4, "Number of people eating"),
		children:  fs.Int("children", 0, "Number of children"),
	}
}

func (p *profileFlags) input(zl *zap.Logger) planner.MealPlanInput {
	if *p.profile != "" {
		input, err := app.LoadProfile(*p.profile)
		if err != nil {
			zl.Fatal("Failed to load profile", zap.Error(err))
		}
		return input
	}
	return planner.MealPlanInput{
		Constraints: recipe.Constraints{
			PickyEaterLevel:      recipe.PickyLevel(*p.picky),
			DietaryRestrictions:  splitList(*p.diet),
			Allergies:            splitList(*p.allergies),
			CookingTimeAvailable: *p.time,
			CookingSkillLevel:    recipe.SkillLevel(*p.skill),
			KitchenEquipment:     splitList(*p.equipment),
		},
		FamilySize: *p.family,
		Children:   *p.children,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sessionID(s string) string {
	if s != "" {
		return s
	}
	return uuid.NewString()
}

// exitOnPlanError exits with status 2 when the profile is too strict, so
// scripts can tell it apart from other failures.
func exitOnPlanError(zl *zap.Logger, msg string, err error) {
	var noRecipes *planner.NoSuitableRecipesError
	if errors.As(err, &noRecipes) {
		fmt.Fprintln(os.Stderr, noRecipes.Error())
		zl.Sync()
		os.Exit(2)
	}
	zl.Fatal(msg, zap.Error(err))
}

func printUsage() {
	fmt.Println("Usage: meal-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate    Generate a weekly dinner plan with shopping list and tips")
	fmt.Println("  shopping    Generate a plan and print only its shopping list")
	fmt.Println("  recipes     List the recipe catalog (use -filter to apply a profile)")
}
