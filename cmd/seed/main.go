package main

import (
	"log"
	"time"

	"financegpt-be/internal/config"
	"financegpt-be/internal/model"
	"financegpt-be/pkg/database"
	"financegpt-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	color.Cyan("Running migrations...")
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create vector extension: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.FinancialProduct{},
		&model.Offer{},
		&model.QueryLog{},
		&model.BrochureChunk{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	color.Green("Migrations complete")

	seedProducts(db)
	seedOffers(db)
	seedDemoUser(db)
	seedBrochures(db, embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel))

	color.Green("Seeding complete")
}

func seedProducts(db *gorm.DB) {
	var count int64
	db.Model(&model.FinancialProduct{}).Count(&count)
	if count > 0 {
		color.Yellow("financial_products already seeded, skipping")
		return
	}

	products := []model.FinancialProduct{
		{Name: "SecureGrowth Fixed Deposit", Type: "Fixed Deposit", InterestRate: "7.1%", MinAmount: 10000, RiskLevel: "Low", TenureMonths: 24, Eligibility: "Age 18+, KYC verified"},
		{Name: "FlexiSaver Fixed Deposit", Type: "Fixed Deposit", InterestRate: "6.5%", MinAmount: 5000, RiskLevel: "Low", TenureMonths: 12, Eligibility: "Age 18+"},
		{Name: "BlueChip Equity Fund", Type: "Mutual Fund", MinAmount: 500, RiskLevel: "High", Eligibility: "KYC verified"},
		{Name: "Balanced Advantage Fund", Type: "Mutual Fund", MinAmount: 1000, RiskLevel: "Medium", Eligibility: "KYC verified"},
		{Name: "Family Health Shield", Type: "Insurance", MinAmount: 8000, RiskLevel: "Low", TenureMonths: 12, Eligibility: "Age 18-65"},
		{Name: "TermSecure Life Cover", Type: "Insurance", MinAmount: 12000, RiskLevel: "Low", TenureMonths: 240, Eligibility: "Age 21-55, income proof"},
		{Name: "Platinum Rewards Card", Type: "Credit Card", InterestRate: "3.5% monthly", MinAmount: 0, RiskLevel: "Medium", Eligibility: "Credit score 700+"},
		{Name: "Everyday Cashback Card", Type: "Credit Card", InterestRate: "3.2% monthly", MinAmount: 0, RiskLevel: "Medium", Eligibility: "Credit score 650+"},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	color.Green("Seeded %d financial products", len(products))
}

func seedOffers(db *gorm.DB) {
	var count int64
	db.Model(&model.Offer{}).Count(&count)
	if count > 0 {
		color.Yellow("offers already seeded, skipping")
		return
	}

	validTill := time.Now().AddDate(0, 3, 0)
	offers := []model.Offer{
		{ProductName: "SecureGrowth Fixed Deposit", PromoInterestRate: "7.6%", SignupBonus: "Zero processing fee", ValidTill: validTill},
		{ProductName: "Platinum Rewards Card", PromoInterestRate: "2.9% monthly", SignupBonus: "5000 bonus points on first spend", ValidTill: validTill},
		{ProductName: "BlueChip Equity Fund", SignupBonus: "No entry load for new investors", ValidTill: validTill},
	}
	if err := db.Create(&offers).Error; err != nil {
		log.Fatalf("Failed to seed offers: %v", err)
	}
	color.Green("Seeded %d offers", len(offers))
}

func seedDemoUser(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("email = ?", "demo@financegpt.local").Count(&count)
	if count > 0 {
		color.Yellow("demo user already seeded, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := model.User{Email: "demo@financegpt.local", PasswordHash: string(hash), IsActive: true}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := model.UserProfile{
			UserId:         user.Id,
			Name:           "Demo User",
			Age:            32,
			Income:         85000,
			EmploymentType: "Salaried",
			RiskAppetite:   "Medium",
			FinancialGoals: "Retirement corpus, emergency fund",
			CreditScore:    742,
			KycVerified:    true,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	color.Green("Seeded demo user demo@financegpt.local (password: demo1234)")
}

// seedBrochures embeds a handful of brochure passages so similarity
// retrieval works out of the box. Skipped with a warning when the
// embedding endpoint is unreachable.
func seedBrochures(db *gorm.DB, embedder embedding.EmbeddingProvider) {
	var count int64
	db.Model(&model.BrochureChunk{}).Count(&count)
	if count > 0 {
		color.Yellow("brochure_chunks already seeded, skipping")
		return
	}

	passages := []struct {
		source  string
		page    int
		content string
	}{
		{"securegrowth_fd.pdf", 1, "SecureGrowth Fixed Deposit offers 7.1% per annum for a 24 month tenure. Premature withdrawal attracts a 1% penalty on the applicable rate. Interest is compounded quarterly and paid at maturity."},
		{"securegrowth_fd.pdf", 2, "Eligibility: resident individuals aged 18 and above with completed KYC. Minimum deposit 10,000. Auto-renewal available on maturity unless opted out 7 days in advance."},
		{"bluechip_equity.pdf", 1, "BlueChip Equity Fund invests at least 80% of assets in large-cap equities. Recommended investment horizon is 5 years or longer. SIP available from 500 per month with no entry load."},
		{"bluechip_equity.pdf", 3, "Exit load: 1% if redeemed within 12 months of allotment, nil thereafter. Expense ratio capped at 1.8%. Past performance does not guarantee future returns."},
		{"family_health_shield.pdf", 1, "Family Health Shield covers hospitalization for self, spouse and up to two children under a single floater sum insured. Pre-existing conditions are covered after a 36 month waiting period."},
		{"platinum_rewards_card.pdf", 2, "Platinum Rewards Card earns 4 points per 100 spent on travel and dining, 1 point elsewhere. Annual fee of 2,500 is waived on yearly spends above 300,000."},
	}

	chunks := make([]model.BrochureChunk, 0, len(passages))
	for _, p := range passages {
		resp, err := embedder.Generate(p.content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			color.Yellow("embedding endpoint unavailable, skipping brochure seed: %v", err)
			return
		}
		chunks = append(chunks, model.BrochureChunk{
			Source:    p.source,
			Page:      p.page,
			Content:   p.content,
			Embedding: pgvector.NewVector(resp.Embedding.Values),
		})
	}

	if err := db.Create(&chunks).Error; err != nil {
		log.Fatalf("Failed to seed brochure chunks: %v", err)
	}
	color.Green("Seeded %d brochure chunks", len(chunks))
}
