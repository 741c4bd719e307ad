package services_test

import (
	"context"
	"testing"

	"github.com/custos-app/custos-backend/internal/core/domain"
	"github.com/custos-app/custos-backend/internal/core/services"
	"github.com/custos-app/custos-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateFornecedorConfigExibirPadrao(t *testing.T) {
	repo := new(MockFornecedorConfigRepository)
	repo.On("SaveFornecedorConfig", mock.Anything, mock.MatchedBy(func(f domain.FornecedorConfig) bool {
		return f.NomeOriginal == "ACME LTDA" && f.Exibir && f.ConfigID != ""
	})).Return(nil)

	svc := services.NewFornecedorConfigService(repo)

	f, err := svc.CreateFornecedorConfig(context.Background(), dto.CreateFornecedorConfigRequest{
		NomeOriginal: "ACME LTDA",
	})

	require.NoError(t, err)
	assert.True(t, f.Exibir, "exibir defaults to true")
	repo.AssertExpectations(t)
}

func TestBulkUpsertFornecedorConfigs(t *testing.T) {
	repo := new(MockFornecedorConfigRepository)
	repo.On("UpsertFornecedorConfigs", mock.Anything, mock.MatchedBy(func(fs []domain.FornecedorConfig) bool {
		return len(fs) == 2 && fs[0].NomeOriginal == "A" && !fs[1].Exibir
	})).Return(1, 1, nil)

	svc := services.NewFornecedorConfigService(repo)

	oculto := false
	res, err := svc.BulkUpsertFornecedorConfigs(context.Background(), dto.BulkFornecedorConfigRequest{
		Configs: []dto.CreateFornecedorConfigRequest{
			{NomeOriginal: "A"},
			{NomeOriginal: "B", Exibir: &oculto},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Criados)
	assert.Equal(t, 1, res.Atualizados)
}

func TestUpdateFornecedorConfigCamposParciais(t *testing.T) {
	repo := new(MockFornecedorConfigRepository)
	existente := &domain.FornecedorConfig{
		ConfigID:     "c1",
		NomeOriginal: "ACME LTDA",
		Exibir:       true,
	}
	repo.On("FindFornecedorConfigByID", mock.Anything, "c1").Return(existente, nil)
	repo.On("UpdateFornecedorConfig", mock.Anything, mock.MatchedBy(func(f domain.FornecedorConfig) bool {
		return f.ConfigID == "c1" && !f.Exibir && f.NomeOriginal == "ACME LTDA"
	})).Return(nil)

	svc := services.NewFornecedorConfigService(repo)

	oculto := false
	f, err := svc.UpdateFornecedorConfig(context.Background(), "c1", dto.UpdateFornecedorConfigRequest{
		Exibir: &oculto,
	})

	require.NoError(t, err)
	assert.False(t, f.Exibir)
	repo.AssertExpectations(t)
}
