package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayBarChart(chart BarChart)
	Panel(title string, content string) string
}

// ErrorLogger é o subconjunto do console usado pelas views para registrar falhas.
type ErrorLogger interface {
	LogError(format string, a ...interface{})
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// BarChart descreve um gráfico de barras simples com eixos rotulados.
type BarChart struct {
	Title      string
	XAxisLabel string
	YAxisLabel string
	Bars       []Bar
}

// Bar representa uma barra do gráfico.
type Bar struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}
