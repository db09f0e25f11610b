package converter

import (
	"github.com/GlebRadaev/spintracker/internal/domain"
	"github.com/GlebRadaev/spintracker/internal/dto"
)

func ToUserDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func ToSessionDTO(session *domain.Session) dto.SessionDTO {
	return dto.SessionDTO{
		ID:        session.ID,
		UserID:    session.UserID,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		User:      ToUserDTO(session.User),
	}
}

func ToSessionDTOs(sessions []domain.Session) []dto.SessionDTO {
	out := make([]dto.SessionDTO, 0, len(sessions))
	for i := range sessions {
		out = append(out, ToSessionDTO(&sessions[i]))
	}
	return out
}

func ToSpinDTO(spin domain.Spin) dto.SpinDTO {
	return dto.SpinDTO{
		ID:        spin.ID,
		SessionID: spin.SessionID,
		Result:    spin.Result,
		BetAmount: dto.Number(spin.BetAmount),
		PL:        dto.Number(spin.PL),
		CreatedAt: spin.CreatedAt,
		UpdatedAt: spin.UpdatedAt,
	}
}

func ToSessionDetailsDTO(details *domain.SessionDetails) dto.SessionDetailsDTO {
	spins := make([]dto.SpinDTO, 0, len(details.Session.Spins))
	for _, spin := range details.Session.Spins {
		spins = append(spins, ToSpinDTO(spin))
	}

	return dto.SessionDetailsDTO{
		SessionDTO: ToSessionDTO(details.Session),
		PLData:     toPLDataDTO(details.PLData),
		Strategy:   toStrategyDTO(details.Strategy),
		Spins:      spins,
	}
}

func toPLDataDTO(data domain.PLData) dto.PLDataDTO {
	totals := make([]dto.RunningTotalDTO, 0, len(data.RunningTotals))
	for _, rt := range data.RunningTotals {
		totals = append(totals, dto.RunningTotalDTO{
			SpinID:       rt.SpinID,
			PL:           dto.Number(rt.PL),
			RunningTotal: dto.Number(rt.RunningTotal),
		})
	}

	stats := data.Statistics
	return dto.PLDataDTO{
		TotalPL:       dto.Number(data.TotalPL),
		RunningTotals: totals,
		Statistics: dto.StatisticsDTO{
			TotalSpins:        stats.TotalSpins,
			WinningSpins:      stats.WinningSpins,
			LosingSpins:       stats.LosingSpins,
			BreakEvenSpins:    stats.BreakEvenSpins,
			WinRatePercentage: dto.Number(stats.WinRatePercentage),
			TotalPL:           dto.Number(stats.TotalPL),
			TotalBetAmount:    dto.Number(stats.TotalBetAmount),
			LargestWin:        dto.Number(stats.LargestWin),
			LargestLoss:       dto.Number(stats.LargestLoss),
			AverageBet:        dto.Number(stats.AverageBet),
			AveragePLPerSpin:  dto.Number(stats.AveragePLPerSpin),
			IsProfitable:      stats.IsProfitable,
		},
	}
}

func toStrategyDTO(report domain.StrategyReport) dto.StrategyDTO {
	action := report.NextAction
	cfg := report.Configuration
	return dto.StrategyDTO{
		NextAction: dto.NextActionDTO{
			Action:            string(action.Action),
			BetAmount:         dto.Number(action.BetAmount),
			Reason:            action.Reason,
			ConsecutiveLosses: action.ConsecutiveLosses,
		},
		Configuration: dto.StrategyConfigurationDTO{
			StrategyName:         cfg.StrategyName,
			BaseBet:              dto.Number(cfg.BaseBet),
			MaxBet:               dto.Number(cfg.MaxBet),
			WinningResult:        cfg.WinningResult,
			MaxConsecutiveLosses: cfg.MaxConsecutiveLosses,
			ProgressionType:      cfg.ProgressionType,
		},
	}
}
