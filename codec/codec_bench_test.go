package codec

import "testing"

type benchResult struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Q1        string `json:"q1"`
	Q2        string `json:"q2"`
	Q3        string `json:"q3"`
	Quadrea   string `json:"quadrea"`
	S1        string `json:"s1"`
	S2        string `json:"s2"`
	S3        string `json:"s3"`
	Collinear bool   `json:"collinear"`
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodec(b *testing.B) {
	v := benchResult{
		Index: 42, ID: "tri-42",
		Q1: "5", Q2: "25", Q3: "20",
		Quadrea: "400", S1: "4/5", S2: "4/25", S3: "4/5",
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data := MustMarshal(c, v)
		b.Run(c.Name()+"/Marshal", func(b *testing.B) { benchmarkCodecMarshal(b, c, v) })
		b.Run(c.Name()+"/Unmarshal", func(b *testing.B) { benchmarkCodecUnmarshal[benchResult](b, c, data) })
	}
}
