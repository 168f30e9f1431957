package repositories

import (
	"errors"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

// Демо-каталог первого запуска.
var seedJobs = []models.Job{
	{
		ID:          1,
		Title:       "Senior Solidity Developer",
		Company:     "DeFi Protocol",
		Location:    "Remote",
		Salary:      "120,000 - 150,000 USDC",
		Description: "We're looking for an experienced Solidity developer to help build our next-generation DeFi protocol.",
		Employer:    "0x1234...5678",
		Category:    "Development",
		IsOpen:      true,
		PostedAt:    "2023-04-01",
	},
	{
		ID:          2,
		Title:       "Blockchain UI/UX Designer",
		Company:     "NFT Marketplace",
		Location:    "New York, USA",
		Salary:      "90,000 - 110,000 USDC",
		Description: "Design beautiful and intuitive interfaces for our NFT marketplace.",
		Employer:    "0xabcd...efgh",
		Category:    "Design",
		IsOpen:      true,
		PostedAt:    "2023-04-05",
	},
	{
		ID:          3,
		Title:       "Smart Contract Auditor",
		Company:     "Security DAO",
		Location:    "Remote",
		Salary:      "130,000 - 160,000 USDC",
		Description: "Help secure the future of Web3 by auditing smart contracts for vulnerabilities.",
		Employer:    "0x7890...1234",
		Category:    "Security",
		IsOpen:      true,
		PostedAt:    "2023-03-20",
	},
	{
		ID:          4,
		Title:       "Community Manager",
		Company:     "GameFi Project",
		Location:    "Remote",
		Salary:      "70,000 - 90,000 USDC",
		Description: "Grow and manage our community across Discord, Twitter, and other platforms.",
		Employer:    "0xijkl...mnop",
		Category:    "Marketing",
		IsOpen:      true,
		PostedAt:    "2023-03-15",
	},
	{
		ID:          5,
		Title:       "Tokenomics Specialist",
		Company:     "Layer 2 Solution",
		Location:    "Berlin, Germany",
		Salary:      "100,000 - 130,000 USDC",
		Description: "Design and implement sustainable tokenomics models for our Layer 2 ecosystem.",
		Employer:    "0xqrst...uvwx",
		Category:    "Economics",
		IsOpen:      true,
		PostedAt:    "2023-03-10",
	},
	{
		ID:          6,
		Title:       "Frontend Developer (React)",
		Company:     "Web3 Wallet",
		Location:    "Remote",
		Salary:      "90,000 - 120,000 USDC",
		Description: "Build beautiful, responsive interfaces for our Web3 wallet application.",
		Employer:    "0x2468...1357",
		Category:    "Development",
		IsOpen:      true,
		PostedAt:    "2023-03-05",
	},
}

var seedApplications = []models.JobApplication{
	{
		ID:            1,
		JobID:         1,
		Applicant:     "0xabcd...1234",
		ApplicantName: "John Doe",
		ResumeIPFS:    "QmXoypizjW3WknFiJnKLwHCnL72vedxjQkDDP1mXWo6uco",
		Message:       "I have 5 years of experience with Solidity and have worked on multiple DeFi protocols. I'm excited about the opportunity to join your team.",
		Status:        models.ApplicationStatusPending,
		AppliedAt:     "2023-04-05",
	},
	{
		ID:            2,
		JobID:         1,
		Applicant:     "0xefgh...5678",
		ApplicantName: "Jane Smith",
		ResumeIPFS:    "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		Message:       "I've been developing smart contracts for 3 years and have a strong background in security auditing. I'm particularly interested in your DeFi platform.",
		Status:        models.ApplicationStatusPending,
		AppliedAt:     "2023-04-06",
	},
	{
		ID:            3,
		JobID:         1,
		Applicant:     "0xijkl...9012",
		ApplicantName: "Alex Johnson",
		ResumeIPFS:    "QmZ4tDuvesekSs4qM5ZBKpXiZGun7S2CYtEZRB3DYXkjGx",
		Message:       "I'm a senior blockchain developer with experience in Ethereum, Solana, and Polkadot. I've built several DeFi applications and would love to contribute to your project.",
		Status:        models.ApplicationStatusPending,
		AppliedAt:     "2023-04-07",
	},
	{
		ID:            4,
		JobID:         2,
		Applicant:     "0xmnop...3456",
		ApplicantName: "Sam Wilson",
		ResumeIPFS:    "QmUNLLsPACCz1vLxQVkXqqLX5R1X345qqfHbsf67hvA3Nn",
		Message:       "I have extensive experience in smart contract auditing and have helped secure several high-profile DeFi protocols.",
		Status:        models.ApplicationStatusPending,
		AppliedAt:     "2023-03-20",
	},
}

// Seed записывает демо-каталог, если соответствующие ключи еще отсутствуют.
// Выполняется один раз при старте приложения, никогда - внутри чтений.
func Seed(store storage.Store, jobRepo JobRepository, applicationRepo ApplicationRepository) error {
	if _, err := store.Get(storage.KeyJobs); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return err
		}
		if err := jobRepo.SaveAll(seedJobs); err != nil {
			return err
		}
		logger.Info("seeded demo jobs", "count", len(seedJobs))
	}

	if _, err := store.Get(storage.KeyApplications); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return err
		}
		if err := applicationRepo.SaveAll(seedApplications); err != nil {
			return err
		}
		logger.Info("seeded demo applications", "count", len(seedApplications))
	}

	return nil
}
