package synonyms

// Group representa uma palavra-chave de template e as formas que ela aceita
type Group struct {
	Root     string   // palavra-chave escrita nos templates
	Variants []string // formas aceitas na pergunta
}

// DefaultGroups contém o vocabulário padrão de RPPS.
// A ordem de declaração desempata palavras-chave de mesmo tamanho.
var DefaultGroups = []Group{
	// Conversa
	{Root: "saudacao", Variants: []string{"oi", "olá", "bom dia", "boa tarde", "boa noite"}},
	{Root: "agradecimento", Variants: []string{"obrigado", "valeu", "brigad", "agradec"}},

	// Portais e sistemas
	{Root: "ecac", Variants: []string{"ecac", "portal ecac", "centro virtual"}},
	{Root: "centro", Variants: []string{"centro", "portal"}},
	{Root: "virtual", Variants: []string{"virtual"}},

	// Regras, parcelas e pagamentos
	{Root: "regra", Variants: []string{"regra", "norma", "artigo"}},
	{Root: "batimento", Variants: []string{"abatimento", "batimento", "cheque"}},
	{Root: "duplicidade", Variants: []string{"duplicidade", "dupla", "duplo"}},
	{Root: "divergencia", Variants: []string{"divergência", "discordância", "diferença"}},
	{Root: "comprovacao", Variants: []string{"comprovação", "prova", "comprovante"}},
	{Root: "beneficios", Variants: []string{"benefícios", "vantagens", "beneficio"}},
	{Root: "transferencia", Variants: []string{"transferência", "remessa", "transferir"}},
	{Root: "parcelas", Variants: []string{"parcelas", "prestações", "faturas", "mensalidades"}},
	{Root: "parcela", Variants: []string{"parcela", "prestação", "fatura"}},
	{Root: "pagamento", Variants: []string{"pagamento", "pagamentos", "quitação", "pago"}},
	{Root: "antecipar", Variants: []string{"antecipar", "antecipação"}},
	{Root: "atraso", Variants: []string{"atraso", "atrasado", "retroativo"}},
	{Root: "guia", Variants: []string{"guia", "boleto", "documento de recolhimento"}},
	{Root: "calculo", Variants: []string{"cálculo", "calcul", "operação"}},
	{Root: "manual", Variants: []string{"manual"}},
	{Root: "calculoexato", Variants: []string{"calculoexato", "calculo exato"}},

	// Demonstrativos e certificados
	{Root: "dipr", Variants: []string{"dipr", "demonstrativo"}},
	{Root: "dpin", Variants: []string{"dpin", "investimento"}},
	{Root: "msc", Variants: []string{"msc", "matriz de saldos contábeis"}},
	{Root: "siconfi", Variants: []string{"siconfi", "siconf"}},
	{Root: "crp", Variants: []string{"crp", "certificado", "previdência"}},
	{Root: "crp_emergencial", Variants: []string{"crp emergencial", "art. 249", "inciso"}},
	{Root: "rpc", Variants: []string{"rpc", "rpc x dipr"}},
	{Root: "cadprev", Variants: []string{"cadprev", "cadastro", "cadprev-web"}},
	{Root: "gescon", Variants: []string{"gescon", "gescon-rpps", "ticket", "chamado"}},
	{Root: "sei", Variants: []string{"sei", "s.e.i.", "processo externo"}},
	{Root: "inss", Variants: []string{"inss", "rgps", "meu.inss.gov.br"}},
	{Root: "dataprev", Variants: []string{"dataprev", "acesso.dataprev.gov.br"}},
	{Root: "comprev", Variants: []string{"comprev", "bg comprev", "pronto.dataprev.gov.br"}},
	{Root: "portaria", Variants: []string{"portaria", "portaria mtp", "mte"}},
	{Root: "decreto", Variants: []string{"decreto", "decreto-lei", "decreto nº"}},

	// Legislação e prazos
	{Root: "lei", Variants: []string{"lei", "artigo", "art.", "codigo"}},
	{Root: "emenda", Variants: []string{"emenda", "emenda constitucional"}},
	{Root: "constitucional", Variants: []string{"constitucional"}},
	{Root: "prazo", Variants: []string{"prazo", "vencimento", "deadline"}},
	{Root: "competencia", Variants: []string{"competência", "competencia", "mês", "periodo"}},
	{Root: "nonagenial", Variants: []string{"noventena", "nonagenial", "90 dias"}},
	{Root: "assinatura", Variants: []string{"assinatura", "rubrica"}},
	{Root: "requisitos", Variants: []string{"requisitos", "condições", "critério"}},
	{Root: "pedido", Variants: []string{"pedido", "solicitação", "requerimento"}},

	// Processos
	{Root: "analise", Variants: []string{"análise", "avaliacao", "verificação"}},
	{Root: "antecedentes", Variants: []string{"antecedentes", "historico"}},
	{Root: "criminais", Variants: []string{"criminais", "penal", "certidões negativas"}},
	{Root: "prova", Variants: []string{"prova", "prova de vida", "processa arquivos"}},
	{Root: "termo", Variants: []string{"termo", "documento"}},
	{Root: "reparcelamento", Variants: []string{"reparcelamento", "reparcelar"}},
	{Root: "envio", Variants: []string{"envio", "enviar", "remeter", "submeter"}},
	{Root: "reenvio", Variants: []string{"reenvio", "reenviar"}},
	{Root: "erro", Variants: []string{"erro", "falha", "problema"}},
	{Root: "irregular", Variants: []string{"irregular", "anomalia"}},
	{Root: "pap", Variants: []string{"pap", "processo administrativo previdenciario"}},
	{Root: "naf", Variants: []string{"naf"}},
	{Root: "impugnacao", Variants: []string{"impugnação", "contestação"}},
	{Root: "copia", Variants: []string{"cópia", "relatório"}},
	{Root: "esocial", Variants: []string{"esocial"}},
	{Root: "progestao", Variants: []string{"pró-gestão", "progestao"}},
	{Root: "certificacao", Variants: []string{"certificação", "certificacao"}},
}
