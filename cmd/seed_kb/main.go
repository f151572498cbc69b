package main

import (
	"context"
	"log"

	"hr-support-be/internal/config"
	"hr-support-be/internal/constant"
	"hr-support-be/internal/entity"
	"hr-support-be/internal/repository/implementation"
	"hr-support-be/pkg/database"
	"hr-support-be/pkg/embedding"
)

type seedArticle struct {
	Title    string
	Content  string
	Category string
}

var articles = []seedArticle{
	{
		Title:    "Payday schedule",
		Content:  "Salaries are paid on the 25th of each month. If the 25th falls on a weekend or public holiday, payment is made on the preceding business day. Direct deposit typically clears by 9 AM local time.",
		Category: constant.CategoryPayroll,
	},
	{
		Title:    "Reporting a paycheck discrepancy",
		Content:  "If your paycheck amount looks wrong, contact the payroll team within 30 days of the payment date. Include your employee ID, the pay period in question, and the expected amount. Corrections are processed in the next payroll run or as an off-cycle payment for errors above 10% of net pay.",
		Category: constant.CategoryPayroll,
	},
	{
		Title:    "Accessing your W-2 and tax documents",
		Content:  "W-2 forms are available in the employee self-service portal by January 31st each year. Historical tax documents for the last 7 years can be downloaded under Documents, Tax Forms.",
		Category: constant.CategoryPayroll,
	},
	{
		Title:    "Health insurance enrollment",
		Content:  "New employees can enroll in health, dental, and vision coverage within 30 days of their start date. Outside this window, changes are only allowed during open enrollment in November or after a qualifying life event.",
		Category: constant.CategoryBenefits,
	},
	{
		Title:    "401(k) plan and employer match",
		Content:  "The company matches 100% of your 401(k) contributions up to 4% of your base salary. Matching contributions vest over 3 years. You can change your contribution rate at any time through the benefits portal.",
		Category: constant.CategoryBenefits,
	},
	{
		Title:    "Requesting paid time off",
		Content:  "Submit vacation requests through the HR portal at least 2 weeks in advance. Requests of 5 or more consecutive days require manager approval. Unused PTO carries over up to 5 days into the next calendar year.",
		Category: constant.CategoryLeaveManagement,
	},
	{
		Title:    "FMLA and extended leave",
		Content:  "Employees with at least 12 months of service are eligible for up to 12 weeks of unpaid, job-protected leave under FMLA. Contact HR at least 30 days before the leave start date when the need is foreseeable.",
		Category: constant.CategoryLeaveManagement,
	},
	{
		Title:    "Remote work policy",
		Content:  "Employees may work remotely up to 3 days per week with manager approval. Fully remote arrangements require VP sign-off and are reviewed annually. Core collaboration hours are 10 AM to 3 PM in your team's primary time zone.",
		Category: constant.CategoryPolicy,
	},
	{
		Title:    "Code of conduct and reporting concerns",
		Content:  "All employees must complete annual code of conduct training. Concerns about workplace behavior can be reported to your manager, HR, or the anonymous ethics hotline. Retaliation against reporters is prohibited.",
		Category: constant.CategoryPolicy,
	},
	{
		Title:    "Internal job applications",
		Content:  "Employees in good standing may apply for internal openings after 12 months in their current role. Notify your manager before the final interview stage. Internal candidates are given priority consideration for the first 5 business days of a posting.",
		Category: constant.CategoryRecruitment,
	},
	{
		Title:    "Employee referral program",
		Content:  "Referral bonuses are paid 90 days after the referred candidate's start date: $2,000 for engineering roles and $1,000 for all other positions. Submit referrals through the recruiting portal before the candidate applies.",
		Category: constant.CategoryRecruitment,
	},
	{
		Title:    "Performance review cycle",
		Content:  "Performance reviews run twice a year, in April and October. Self-assessments are due 2 weeks before the review meeting. Promotion nominations are submitted by managers during the April cycle.",
		Category: constant.CategoryPerformance,
	},
}

func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	repo := implementation.NewKBArticleRepository(db)
	ctx := context.Background()

	log.Printf("Seeding %d knowledge base articles...", len(articles))

	entities := make([]*entity.KBArticle, 0, len(articles))
	for _, a := range articles {
		res, err := provider.Generate(a.Title+"\n"+a.Content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Fatalf("Error: Failed to embed %q: %v", a.Title, err)
		}

		entities = append(entities, &entity.KBArticle{
			Title:          a.Title,
			Content:        a.Content,
			Category:       a.Category,
			EmbeddingValue: res.Embedding.Values,
		})
		log.Printf("  embedded: %s [%s]", a.Title, a.Category)
	}

	if err := repo.CreateBulk(ctx, entities); err != nil {
		log.Fatalf("Error: Failed to insert articles: %v", err)
	}

	log.Println("✅ Success: Knowledge base seeded.")
}
