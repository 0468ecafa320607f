package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internhunt/internal/domain"
)

func offer(company, title, location string) domain.JobOffer {
	return domain.JobOffer{CompanyName: company, Title: title, Location: location}
}

func TestAddJobsDedupesByHash(t *testing.T) {
	repo := NewRepository()

	added, total := repo.AddJobs([]domain.JobOffer{
		offer("Acme", "Software Engineer Intern", "Lisbon"),
		offer("Globex", "Backend Intern", "Porto"),
		offer("Acme", "Software Engineer Intern", "Lisbon"), // dup within batch
	})
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, total)
}

func TestAddJobsIdempotent(t *testing.T) {
	repo := NewRepository()
	batch := []domain.JobOffer{offer("Acme", "Cloud Intern", "Braga")}

	added, total := repo.AddJobs(batch)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, total)

	added, total = repo.AddJobs(batch)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, total)
}

func TestAddJobsFirstSeenWins(t *testing.T) {
	repo := NewRepository()

	first := offer("Acme", "DevOps Apprentice", "Lisbon")
	first.URL = "https://example.com/original"
	second := first
	second.URL = "https://example.com/repost"

	repo.AddJobs([]domain.JobOffer{first})
	repo.AddJobs([]domain.JobOffer{second})

	all := repo.AllJobs()
	assert.Len(t, all, 1)
	assert.Equal(t, "https://example.com/original", all[0].URL)
}

func TestAllJobsDeterministicOrder(t *testing.T) {
	build := func(order []domain.JobOffer) []domain.JobOffer {
		repo := NewRepository()
		repo.AddJobs(order)
		return repo.AllJobs()
	}

	a := offer("Acme", "Software Engineer Intern", "Lisbon")
	b := offer("Globex", "Backend Intern", "Porto")
	c := offer("Initech", "Platform Intern", "Braga")

	assert.Equal(t,
		build([]domain.JobOffer{a, b, c}),
		build([]domain.JobOffer{c, b, a}),
	)
}

func TestEmptyRepository(t *testing.T) {
	repo := NewRepository()
	assert.Empty(t, repo.AllJobs())
	assert.Zero(t, repo.Len())
}
