package entity

import "time"

// FrequencyBucket é uma faixa de preço agregada pelo servidor, ex: "0 - 10000".
type FrequencyBucket struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// FrequencyQuery limita a agregação a um intervalo de datas. Campos nulos não são enviados.
type FrequencyQuery struct {
	From *time.Time
	To   *time.Time
}
