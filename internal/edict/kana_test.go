package edict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKanaIndex(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Headword: "愛", Reading: "あい"},
		{Headword: "青", Reading: "あお"},
		{Headword: "家", Reading: "いえ"},
		{Headword: "蚊", Reading: "か"},
		{Headword: "アイス"},
		{Headword: "カメラ"},
	}

	idx := KanaIndex(records)

	assert.Equal(t, 0, idx['あ'])
	assert.Equal(t, 2, idx['い'])
	assert.Equal(t, 3, idx['か'])
	assert.Equal(t, 4, idx['ア'])
	assert.Equal(t, 5, idx['カ'])
	assert.Equal(t, -1, idx['う'])
	assert.Equal(t, -1, idx['ワ'])
	assert.Len(t, idx, 88)
}

func TestKanaIndex_Empty(t *testing.T) {
	t.Parallel()

	idx := KanaIndex(nil)
	for kana, pos := range idx {
		assert.Equal(t, -1, pos, "kana %q", kana)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Headword: "愛", Reading: "あい"},
		{Headword: "青", Reading: "あお"},
		{Headword: "青い", Reading: "あおい"},
		{Headword: "犬", Reading: "いぬ"},
		{Headword: "傘", Reading: "かさ"},
		{Headword: "学校", Reading: "がっこう"},
		{Headword: "カメラ"},
	}
	index := KanaIndex(records)

	tests := []struct {
		reading string
		want    []int
	}{
		{"あお", []int{1, 2}},
		{"あおい", []int{2}},
		{"あ", []int{0, 1, 2}},
		{"あか", []int{0, 1, 2}}, // longest matching prefix is "あ"
		{"が", []int{5}},
		{"カメ", []int{6}},
		{"カメラマン", []int{6}},
		{"ん", nil},
		{"", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.reading, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Match(records, index, tt.reading))
		})
	}
}

func TestMatch_WithoutIndex(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Headword: "愛", Reading: "あい"},
		{Headword: "犬", Reading: "いぬ"},
		{Headword: "猫", Reading: "ねこ"},
	}
	assert.Equal(t, []int{2}, Match(records, nil, "ねこ"))
	assert.Nil(t, Match(nil, nil, "ねこ"))
}
