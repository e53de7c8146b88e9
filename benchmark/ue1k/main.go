package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emma-alert/emma-broker/pkg/broker"
	"github.com/emma-alert/emma-broker/pkg/models"
)

var maxUEs int = 2000
var monitorHostPort string = "127.0.0.1:2080"
var redisAddr string = "127.0.0.1:6379"

var brokerHandle *broker.Broker

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	ueIDs := make([]string, maxUEs)
	for i := range maxUEs {
		ueIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v UE IDs\n", maxUEs)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", monitorHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP monitor:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP monitor not available")
	}

	fmt.Printf("http monitor verified\n")

	brokerHandle, err = broker.New(context.Background(), broker.Options{Addr: redisAddr})
	if err != nil {
		log.Fatal("Failed to connect to redis backend:", err)
	}
	defer brokerHandle.Cleanup()

	fmt.Printf("redis backend verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUEs {
		wg.Add(1)
		go func() {
			registerUE(ueIDs[i])
			fmt.Printf("\rregistered UE %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v UEs: used time=%v seconds, throughput=%v action/second\n",
		maxUEs, usedTime.Seconds(), float64(maxUEs)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxUEs {
		wg.Add(1)
		go func() {
			doAction(ueIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v UEs: used time=%v seconds, throughput=%v action/second\n",
		maxUEs, usedTime.Seconds(), float64(maxUEs*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerUE(ueID string) {
	ok := brokerHandle.Presence.RegisterUE(context.Background(), &models.UEPresenceRecord{
		UEID: ueID,
		Location: &models.GeoPoint{
			Lat: rndFloat64(-90.0, 90.0, 4),
			Lon: rndFloat64(-180.0, 180.0, 4),
		},
	})
	if !ok {
		panic("failed to register UE " + ueID)
	}
}

func doAction(ueID string) {
	actions := []func(){
		genPublishAlertAction(ueID),
		genGetUEStatusAction(ueID),
		genMarkAlertReceivedAction(ueID),
	}
	actionNames := []string{
		"PublishAlert",
		"GetUEStatus",
		"MarkAlertReceived",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for UE %v", actionNames[index], ueID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPublishAlertAction(ueID string) func() {
	return func() {
		useHttp := flipCoin()

		alert := models.AlertRecord{
			Identifier: uuid.NewString(),
			Sender:     "bench-" + ueID,
			Headline: fmt.Sprintf("Synthetic alert near %v,%v",
				rndFloat64(-90.0, 90.0, 2), rndFloat64(-180.0, 180.0, 2)),
		}

		if useHttp {
			jsonData, _ := json.Marshal(alert)
			resp, err := http.Post(fmt.Sprintf("http://%s/alerts", monitorHostPort), "application/json", bytes.NewBuffer(jsonData))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusAccepted {
				fmt.Printf("\nresponse status code != 202: %v\n", resp)
			}
		} else {
			// false just means nobody is subscribed, the alert is stored either way
			brokerHandle.Alerts.PublishAlert(context.Background(), &alert)
		}
	}
}

func genGetUEStatusAction(ueID string) func() {
	return func() {
		useHttp := flipCoin()

		if useHttp {
			resp, err := http.Get(fmt.Sprintf("http://%s/ues/%s", monitorHostPort, ueID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp)
			}
		} else {
			if status := brokerHandle.Presence.GetUEStatus(context.Background(), ueID); status == nil {
				fmt.Printf("\nno status for UE %v\n", ueID)
			}
		}
	}
}

func genMarkAlertReceivedAction(ueID string) func() {
	return func() {
		if !brokerHandle.Presence.MarkAlertReceived(context.Background(), ueID) {
			fmt.Printf("\nfailed to mark alert received for UE %v\n", ueID)
		}
	}
}
