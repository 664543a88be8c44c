package calc

import (
	"math"
	"sort"

	"valuationengine/pkg/core/dashboard"
	"valuationengine/pkg/core/dateutil"
	"valuationengine/pkg/core/model"
	"valuationengine/pkg/core/valuation"
)

// Run projects scenario month by month into a full ScenarioResult: the
// monthly and annual statements, the valuation layer, and the dashboard
// series. The calculator is purely a function of scenario — no logging, no
// I/O, no hidden state survives between calls.
func Run(scenario model.ScenarioInput) (model.ScenarioResult, error) {
	if err := scenario.Validate(); err != nil {
		return model.ScenarioResult{}, err
	}

	months := scenario.Timeframe.Months
	startDate := scenario.Timeframe.StartDate

	planStates := make(map[string]*planState, len(scenario.Revenue.Plans))
	for _, plan := range scenario.Revenue.Plans {
		planStates[plan.Name] = newPlanState(plan)
	}

	hcStates := newHeadcountStates(scenario.Headcount.Positions)
	hiringByMonth := make(map[int][]model.HiringPlan)
	for _, hire := range scenario.Headcount.Hires {
		hiringByMonth[hire.MonthIndex] = append(hiringByMonth[hire.MonthIndex], hire)
	}

	var depTracks []depreciationTrack
	var debtStates []debtState

	cs := scenario.CompanyState
	cash := cs.Cash
	accountsReceivable := cs.AccountsReceivable
	accountsPayable := cs.AccountsPayable
	inventory := cs.Inventory
	fixedAssets := cs.FixedAssets
	accumulatedDepreciation := cs.AccumulatedDepreciation
	debtBalance := cs.Debt
	equity := cs.Equity
	if equity == 0 {
		equity = cs.Cash + cs.NetFixedAssets()
	}

	monthly := make([]model.MonthlyProjection, 0, months)
	annualIncome := map[int]*model.IncomeStatement{}
	annualCash := map[int]*model.CashFlowStatement{}
	var annualYears []int

	for monthIndex := 0; monthIndex < months; monthIndex++ {
		periodStart := dateutil.AddMonths(startDate, monthIndex)

		revenueSummary := computeRevenue(monthIndex, scenario.Revenue, planStates)

		headcountBreakdown, payrollTotal := computeHeadcount(monthIndex, scenario.Headcount, hcStates, hiringByMonth)

		costBreakdown, totalCOGS, totalOpex := computeCosts(monthIndex, scenario.Costs, revenueSummary)

		activeCustomers := 0.0
		for _, state := range planStates {
			activeCustomers += state.activeCustomers
		}
		totalCOGS += scenario.Costs.COGSPerCustomer * activeCustomers
		totalCOGS += scenario.Costs.COGSVariablePct * revenueSummary.TotalNet

		revenueTaxesAmount, taxBreakdown := computeRevenueTaxes(revenueSummary, scenario.Taxes, payrollTotal)

		grossRevenue := revenueSummary.TotalGross
		netRevenue := revenueSummary.TotalNet - revenueTaxesAmount

		grossMargin := netRevenue - totalCOGS
		operatingExpenses := totalOpex + payrollTotal
		ebitda := grossMargin - operatingExpenses

		var depreciation float64
		depreciation, accumulatedDepreciation, fixedAssets, depTracks = computeDepreciation(
			monthIndex, scenario.Capex.Items, depTracks, fixedAssets, accumulatedDepreciation,
		)

		amortization := 0.0
		ebit := ebitda - depreciation - amortization

		var interestExpense, principalPaid float64
		interestExpense, principalPaid, debtStates = computeDebt(monthIndex, scenario.Funding.Debt, debtStates)

		for _, instrument := range scenario.Funding.Debt {
			if instrument.MonthIndex == monthIndex {
				debtBalance += instrument.Amount
			}
		}
		debtBalance -= principalPaid

		ebt := ebit - interestExpense
		incomeTax := math.Max(0, ebt) * scenario.Taxes.EffectiveIncomeTaxRate
		netIncome := ebt - incomeTax

		wcDelta := computeWorkingCapital(
			scenario.WorkingCapital,
			netRevenue,
			totalCOGS+operatingExpenses,
			revenueSummary,
			accountsReceivable,
			accountsPayable,
			inventory,
		)
		accountsReceivable += wcDelta.ChangeAR
		accountsPayable += wcDelta.ChangeAP
		inventory += wcDelta.ChangeInventory

		var capexAmount float64
		for _, item := range scenario.Capex.Items {
			if item.MonthIndex == monthIndex {
				capexAmount += item.Amount
			}
		}

		operatingCF := netIncome + depreciation + amortization - wcDelta.TotalChange
		investingCF := -capexAmount

		var equityRaise, debtInflow float64
		for _, round := range scenario.Funding.EquityRounds {
			if round.MonthIndex == monthIndex {
				equityRaise += round.Amount
			}
		}
		for _, instrument := range scenario.Funding.Debt {
			if instrument.MonthIndex == monthIndex {
				debtInflow += instrument.Amount
			}
		}
		financingCF := equityRaise + debtInflow - principalPaid - interestExpense

		fcff := ebit*(1-scenario.Taxes.EffectiveIncomeTaxRate) + depreciation + amortization - wcDelta.TotalChange - capexAmount
		fcfe := fcff - principalPaid + debtInflow

		netChangeInCash := operatingCF + investingCF + financingCF
		cash += netChangeInCash
		if cash < scenario.WorkingCapital.MinCashBalance {
			shortfall := scenario.WorkingCapital.MinCashBalance - cash
			cash += shortfall
			financingCF += shortfall
			equity += shortfall
		}

		equity += netIncome + equityRaise

		incomeStatement := model.IncomeStatement{
			GrossRevenue:      grossRevenue,
			RevenueTaxes:      revenueTaxesAmount,
			NetRevenue:        netRevenue,
			COGS:              totalCOGS,
			GrossMargin:       grossMargin,
			OperatingExpenses: operatingExpenses,
			EBITDA:            ebitda,
			Depreciation:      depreciation,
			Amortization:      amortization,
			EBIT:              ebit,
			Interest:          interestExpense,
			EBT:               ebt,
			IncomeTax:         incomeTax,
			NetIncome:         netIncome,
		}

		balanceSheet := model.BalanceSheet{
			Cash:                    cash,
			AccountsReceivable:      accountsReceivable,
			Inventory:               inventory,
			FixedAssets:             fixedAssets,
			AccumulatedDepreciation: accumulatedDepreciation,
			AccountsPayable:         accountsPayable,
			Debt:                    debtBalance,
			Equity:                  equity,
		}

		cashFlow := model.CashFlowStatement{
			OperatingCashFlow: operatingCF,
			InvestingCashFlow: investingCF,
			FinancingCashFlow: financingCF,
			NetChangeInCash:   netChangeInCash,
			EndingCash:        cash,
			FCFF:              fcff,
			FCFE:              fcfe,
		}

		monthly = append(monthly, model.MonthlyProjection{
			PeriodStart:         periodStart,
			IncomeStatement:     incomeStatement,
			BalanceSheet:        balanceSheet,
			CashFlow:            cashFlow,
			RevenueSummary:      revenueSummary,
			HeadcountBreakdown:  headcountBreakdown,
			CostBreakdown:       costBreakdown,
			TaxBreakdown:        taxBreakdown,
			WorkingCapitalDelta: wcDelta,
		})

		accumulateAnnual(periodStart.Year(), incomeStatement, cashFlow, annualIncome, annualCash, &annualYears)
	}

	annual := buildAnnualSummaries(annualYears, annualIncome, annualCash)

	valuationResult, err := valuation.Run(monthly, annual, scenario.Valuation, scenario.Funding)
	if err != nil {
		return model.ScenarioResult{}, err
	}

	dashboards := dashboard.Build(monthly, valuationResult)

	return model.ScenarioResult{
		Monthly:    monthly,
		Annual:     annual,
		Valuation:  valuationResult,
		Dashboards: dashboards,
	}, nil
}

func accumulateAnnual(
	year int,
	income model.IncomeStatement,
	cashFlow model.CashFlowStatement,
	annualIncome map[int]*model.IncomeStatement,
	annualCash map[int]*model.CashFlowStatement,
	years *[]int,
) {
	inc, ok := annualIncome[year]
	if !ok {
		inc = &model.IncomeStatement{}
		annualIncome[year] = inc
		annualCash[year] = &model.CashFlowStatement{}
		*years = append(*years, year)
	}
	inc.GrossRevenue += income.GrossRevenue
	inc.RevenueTaxes += income.RevenueTaxes
	inc.NetRevenue += income.NetRevenue
	inc.COGS += income.COGS
	inc.OperatingExpenses += income.OperatingExpenses
	inc.EBITDA += income.EBITDA
	inc.Depreciation += income.Depreciation
	inc.Amortization += income.Amortization
	inc.EBIT += income.EBIT
	inc.Interest += income.Interest
	inc.EBT += income.EBT
	inc.IncomeTax += income.IncomeTax
	inc.NetIncome += income.NetIncome

	cf := annualCash[year]
	cf.OperatingCashFlow += cashFlow.OperatingCashFlow
	cf.InvestingCashFlow += cashFlow.InvestingCashFlow
	cf.FinancingCashFlow += cashFlow.FinancingCashFlow
	cf.FCFF += cashFlow.FCFF
	cf.FCFE += cashFlow.FCFE
}

func buildAnnualSummaries(
	years []int,
	annualIncome map[int]*model.IncomeStatement,
	annualCash map[int]*model.CashFlowStatement,
) []model.AnnualSummary {
	sortedYears := append([]int(nil), years...)
	sort.Ints(sortedYears)

	summaries := make([]model.AnnualSummary, 0, len(sortedYears))
	for _, year := range sortedYears {
		inc := annualIncome[year]
		cf := annualCash[year]
		income := model.IncomeStatement{
			GrossRevenue:      inc.GrossRevenue,
			RevenueTaxes:      inc.RevenueTaxes,
			NetRevenue:        inc.NetRevenue,
			COGS:              inc.COGS,
			GrossMargin:       inc.NetRevenue - inc.COGS,
			OperatingExpenses: inc.OperatingExpenses,
			EBITDA:            inc.EBITDA,
			Depreciation:      inc.Depreciation,
			Amortization:      inc.Amortization,
			EBIT:              inc.EBIT,
			Interest:          inc.Interest,
			EBT:               inc.EBT,
			IncomeTax:         inc.IncomeTax,
			NetIncome:         inc.NetIncome,
		}
		cashFlow := model.CashFlowStatement{
			OperatingCashFlow: cf.OperatingCashFlow,
			InvestingCashFlow: cf.InvestingCashFlow,
			FinancingCashFlow: cf.FinancingCashFlow,
			NetChangeInCash:   cf.OperatingCashFlow + cf.InvestingCashFlow + cf.FinancingCashFlow,
			EndingCash:        0.0,
			FCFF:              cf.FCFF,
			FCFE:              cf.FCFE,
		}
		summaries = append(summaries, model.AnnualSummary{Year: year, IncomeStatement: income, CashFlow: cashFlow})
	}
	return summaries
}
